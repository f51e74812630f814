package detect

import "strings"

// Language detectors are keyword scans and overlap heavily; the pipeline
// order decides between them.

func IsRust(text string) bool {
	return containsAny(text,
		"fn ", "impl ", "use ", "struct ", "enum ", "trait ", "let mut ", "match ")
}

func IsPython(text string) bool {
	return hasAnyPrefix(text, "#!/usr/bin/env python", "#!/usr/bin/python") ||
		containsAny(text,
			"import ", "from ", "def ", "class ", "if __name__", "print(")
}

func IsTypeScript(text string) bool {
	return containsAny(text,
		"interface ", "type ", ": string", ": number", ": boolean", "enum ")
}

func IsJavaScript(text string) bool {
	return containsAny(text,
		"const ", "let ", "var ", "function ", "=>", "console.log(")
}

func IsGo(text string) bool {
	return containsAny(text, "package ", "func ", "import (", "var ") ||
		(strings.Contains(text, "type ") && strings.Contains(text, " struct"))
}

func IsJava(text string) bool {
	return containsAny(text,
		"public class ", "private ", "public static void main", "import java.")
}

func IsCSharp(text string) bool {
	return containsAny(text,
		"using System", "namespace ", "public class ", "static void Main")
}

func IsCpp(text string) bool {
	return containsAny(text, "#include <", "std::", "cout <<", "namespace ") ||
		(strings.Contains(text, "class ") && strings.Contains(text, "::"))
}

func IsC(text string) bool {
	return containsAny(text,
		"#include <stdio.h>", "#include <stdlib.h>", "int main(", "void ")
}

func IsShell(text string) bool {
	return hasAnyPrefix(text, "#!/bin/bash", "#!/bin/sh", "#!/usr/bin/env bash") ||
		containsAny(text, "echo ", "if [", "for ")
}

func IsPowerShell(text string) bool {
	return containsAny(text, "$PSVersionTable", "Get-", "Set-", "Write-Host") ||
		strings.HasPrefix(text, "param(")
}

func IsRuby(text string) bool {
	return strings.HasPrefix(text, "#!/usr/bin/env ruby") ||
		containsAny(text, "puts ", "require ", "def ") ||
		(strings.Contains(text, "class ") && strings.Contains(text, "end"))
}

func IsPHP(text string) bool {
	return strings.HasPrefix(text, "<?php") ||
		containsAny(text, "<?=", "echo ") ||
		(strings.Contains(text, "function ") && strings.Contains(text, "$"))
}

func IsSwift(text string) bool {
	return containsAny(text, "import Foundation", "import UIKit", "func ") ||
		(strings.Contains(text, "var ") && strings.Contains(text, ": "))
}

func IsKotlin(text string) bool {
	return containsAny(text, "fun ", "val ", "import kotlin.") ||
		(strings.Contains(text, "var ") && strings.Contains(text, ": "))
}
