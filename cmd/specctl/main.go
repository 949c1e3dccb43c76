// specctl is the operator CLI for spec artifacts: inspect and validate a
// local artifact tree, and sync it with a running orchestrator.
package main

func main() {
	Execute()
}
