package util

import (
	"fmt"
	"strings"
	"unicode"
)

const MinPasswordLength = 8

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "password123": {}, "12345678": {}, "123456789": {},
	"1234567890": {}, "qwerty123": {}, "qwertyuiop": {}, "iloveyou": {}, "sunshine": {},
	"princess": {}, "football": {}, "baseball": {}, "welcome1": {}, "abc12345": {},
	"11111111": {}, "00000000": {}, "letmein1": {}, "passw0rd": {}, "trustno1": {},
	"superman": {}, "starwars": {}, "whatever": {}, "dragon123": {}, "admin123": {},
}

// PasswordStrengthErrors 长度、常见密码、纯数字校验
func PasswordStrengthErrors(password string) []string {
	var msgs []string
	if len([]rune(password)) < MinPasswordLength {
		msgs = append(msgs, fmt.Sprintf("This password is too short. It must contain at least %d characters.", MinPasswordLength))
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		msgs = append(msgs, "This password is too common.")
	}
	if password != "" && isNumeric(password) {
		msgs = append(msgs, "This password is entirely numeric.")
	}
	return msgs
}

// PasswordSimilarityErrors 与用户属性过于相似，attrs 为 字段描述 -> 值
func PasswordSimilarityErrors(password string, attrs map[string]string) []string {
	pw := strings.ToLower(password)
	var msgs []string
	for _, name := range []string{"username", "email address", "first name", "last name"} {
		value := strings.ToLower(strings.TrimSpace(attrs[name]))
		if value == "" {
			continue
		}
		parts := strings.FieldsFunc(value, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		parts = append(parts, value)
		for _, part := range parts {
			if len(part) < 4 {
				continue
			}
			if strings.Contains(pw, part) || strings.Contains(part, pw) {
				msgs = append(msgs, fmt.Sprintf("The password is too similar to the %s.", name))
				break
			}
		}
	}
	return msgs
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
