// Command vis is a scriptable front end over the piece-table document
// core in package vis: load a file, apply a sequence of edits, and save
// or dump the result. It exists primarily to exercise the core end to
// end; see root.go for the command tree.
package main

func main() {
	Execute()
}
