package main

func main() {
	ExecutePrompt()
}
