// +build gofuzz

//
// This file is only used for fuzzing the parser,
// which will detect hangs, infinite loops & etc.
//

package parser

import "github.com/go-librian/librian/evaluator/script/lexer"

// Fuzz is the function that our fuzzer-application uses.
func Fuzz(data []byte) int {

	l := lexer.New(string(data))
	p := New(l)

	p.ParseProgram()
	return 1

}
