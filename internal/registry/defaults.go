package registry

// Jargon holds one jargon definition: a wrapping template containing the
// INSERT_HERE marker, and the key whose presence in submitted code means the
// wrap is not needed.
type Jargon struct {
	Template string
	Key      string
}

// DefaultAliases returns the built-in alias set seeded into a fresh registry.
func DefaultAliases() map[string]string {
	return map[string]string{
		"c":           "c-clang",
		"c#":          "cs-csc",
		"c++":         "cpp-clang",
		"cpp":         "cpp-clang",
		"cs":          "cs-csc",
		"f#":          "fs-core",
		"fs":          "fs-core",
		"java":        "java-openjdk",
		"javascript":  "javascript-node",
		"js":          "javascript-node",
		"objective-c": "objective-c-clang",
		"py":          "python3",
		"python":      "python3",
		"swift":       "swift4",
	}
}

// DefaultJargon returns the built-in jargon set seeded into a fresh registry.
// Templates are defined once per language and shared across its dialect
// identifiers; this sharing is seed data, independent of the alias table.
func DefaultJargon() map[string]Jargon {
	jargon := map[string]Jargon{
		"c": {
			Template: `#include <stdbool.h>
#include <stdio.h>

int main(void) {
    INSERT_HERE
}`,
			Key: "int main(",
		},
		"cpp": {
			Template: `#include <iostream>
#include <stdio.h>
using namespace std;

int main() {
    INSERT_HERE
}`,
			Key: "int main(",
		},
		"cs": {
			Template: `namespace MyNamespace {
    class MyClass {
        static void Main(string[] args) {
            INSERT_HERE
        }
    }
}`,
			Key: "static void Main(",
		},
		"dart": {
			Template: `void main() {
    INSERT_HERE
}`,
			Key: "void main(",
		},
		"go": {
			Template: `package main
import "fmt"

func main() {
    INSERT_HERE
}`,
			Key: "func main(",
		},
		"java": {
			Template: `import java.util.*;

class MyClass {
    public static void main(String[] args) {
        Scanner scanner = new Scanner(System.in);
        INSERT_HERE
    }
}`,
			Key: "public static void main(",
		},
		"kotlin": {
			Template: `fun main(args : Array<String>) {
    INSERT_HERE
}`,
			Key: "fun main(",
		},
		"objective-c": {
			Template: `#include <stdio.h>
// Print with the ` + "`puts`" + ` function, not ` + "`NSLog`" + `.

int main() {
    INSERT_HERE
}`,
			Key: "int main(",
		},
		"rust": {
			Template: `fn main() {
    INSERT_HERE
}`,
			Key: "fn main(",
		},
		"scala": {
			Template: `object Main extends App {
    INSERT_HERE
}`,
			Key: "object Main",
		},
	}

	// Dialect identifiers reuse their base language's definition.
	for base, dialects := range map[string][]string{
		"c":           {"c-clang", "c-gcc", "c-tcc"},
		"cpp":         {"c++", "cpp-clang", "cpp-gcc"},
		"cs":          {"c#", "cs-core", "cs-csc", "cs-csi", "cs-mono", "cs-mono-shell"},
		"java":        {"java-jdk", "java-openjdk"},
		"objective-c": {"objective-c-clang", "objective-c-gcc"},
	} {
		for _, dialect := range dialects {
			jargon[dialect] = jargon[base]
		}
	}

	return jargon
}
