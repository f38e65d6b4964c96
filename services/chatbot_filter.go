package services

import "strings"

// Список стоп-слов для детского чата. Проверка по подстроке без учета
// регистра: может срабатывать на безобидных словах, содержащих стоп-слово,
// и не ловит перефразировки — это предварительный фильтр, а не модерация
var blockedWords = []string{
	"violence",
	"weapon",
	"kill",
	"hate",
	"blood",
	"drugs",
	"adult",
	"attack",
	"fight",
}

// ContainsBlockedWord проверяет, содержит ли текст стоп-слово
func ContainsBlockedWord(input string) bool {
	lowerInput := strings.ToLower(input)
	for _, word := range blockedWords {
		if strings.Contains(lowerInput, word) {
			return true
		}
	}
	return false
}
