// Command lvsearch generates random mazes and solves them with depth-first
// or breadth-first search.
package main

func main() {
	Execute()
}
