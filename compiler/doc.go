/*

Process of compilation

Program Text ->
	parse ->
Abstract Syntax Tree (ast) ->
	lower ->
Intermediate Language (sil) ->
	transform ->
Intermediate Language (sil) ->
	codegen ->
Binary Object (obj) ->
	link ->
Binary Executable

This module carries the sil object model: typed instructions, basic
blocks and the control-flow edges between them. Parsing, type checking
and code generation live in their own stages and only consume it.

*/
package compiler
