// +build gofuzz

//
// This file is only used for fuzzing the embedded-code lexer, parser
// and compiler, which will detect hangs, infinite loops & etc.
//

package fuzz

import "github.com/go-librian/librian/evaluator/script"

// Fuzz is the function that our fuzzer-application uses.
func Fuzz(data []byte) int {

	_, err := script.New(string(data))
	if err != nil {
		return 0
	}

	return 1
}
