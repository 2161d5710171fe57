package randutil

import (
	"unsafe"
)

const ascii = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Bytes генерирует случайную байтовую последовательность длинной n, состоящую
// из ASCII-символов; первый символ никогда не является цифрой.
//
// Если n <= 0, то возвращает nil.
func Bytes(n int) []byte {
	if n <= 0 {
		return nil
	}

	rnd := Handle()
	buf := make([]byte, 0, n)

	for len(buf) < n {
		char := ascii[rnd.IntN(len(ascii))]
		if len(buf) == 0 && '0' <= char && char <= '9' {
			continue
		}
		buf = append(buf, char)
	}

	return buf
}

// String генерирует случайную ASCII-последовательность длинной n.
//
// Если n <= 0, то возвращает пустую строку.
func String(n int) string {
	b := Bytes(n)
	return unsafe.String(unsafe.SliceData(b), len(b))
}
