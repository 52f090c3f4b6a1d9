package main

// Importing pkg/scene registers the node classes with the default
// registry before any command runs.
import _ "github.com/mvane/scenekit/pkg/scene"

func main() {
	execute()
}
