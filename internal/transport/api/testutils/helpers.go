package testutils

import "strings"

// OverBytesMemo строка, которая проходит проверку длины в рунах (max=limit), но длиннее limit в байтах.
func OverBytesMemo(limit int) string {
	const symbol = "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, limit/len(symbol)+1)
}
