// File: pkg/combine/header.go
package combine

import (
	"fmt"
	"sort"
	"strings"
)

// Header renders the introductory block placed before the file sections.
func Header(absRoot string) string {
	return fmt.Sprintf(`# Project Code Context for LLM

**Input Directory Scanned:** `+"`%s`"+`

**Purpose:** This document aggregates source code and relevant text files from the specified software project directory. It is intended to provide context for a Large Language Model (LLM) to understand the project.

**Structure:**
* Files are presented sequentially below this header.
* Each file's content is clearly marked with a header line: `+"`--- File: [relative/path/to/file] ---`"+` (paths use forward slashes '/' for consistency).
* The content of each file follows its header, enclosed in a Markdown fenced code block.
* The code block is tagged with the inferred programming language or format (e.g., python, json, text) where possible.

**Instructions for LLM:** Please analyze the following file contents to understand the project's structure, functionality, code logic, and configuration. Use this information to answer questions or perform tasks related to this project.

---

`, absRoot)
}

// treeNode is a directory in the tree built from relative file paths.
type treeNode struct {
	dirs  map[string]*treeNode
	files []string
}

func newTreeNode() *treeNode {
	return &treeNode{dirs: map[string]*treeNode{}}
}

// Tree renders the given forward-slash paths as an indented tree inside a
// fenced block. Directories come first, then files, both alphabetically.
func Tree(paths []string) string {
	root := newTreeNode()
	for _, p := range paths {
		parts := strings.Split(p, "/")
		node := root
		for _, dir := range parts[:len(parts)-1] {
			child, ok := node.dirs[dir]
			if !ok {
				child = newTreeNode()
				node.dirs[dir] = child
			}
			node = child
		}
		node.files = append(node.files, parts[len(parts)-1])
	}

	var b strings.Builder
	b.WriteString("**Files:**\n\n```text\n.\n")
	writeTree(&b, root, "")
	b.WriteString("```\n\n---\n\n")
	return b.String()
}

func writeTree(b *strings.Builder, node *treeNode, prefix string) {
	dirs := make([]string, 0, len(node.dirs))
	for name := range node.dirs {
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	files := append([]string(nil), node.files...)
	sort.Strings(files)

	total := len(dirs) + len(files)
	i := 0
	for _, name := range dirs {
		connector, extension := "├── ", "│   "
		if i == total-1 {
			connector, extension = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%s/\n", prefix, connector, name)
		writeTree(b, node.dirs[name], prefix+extension)
		i++
	}
	for _, name := range files {
		connector := "├── "
		if i == total-1 {
			connector = "└── "
		}
		fmt.Fprintf(b, "%s%s%s\n", prefix, connector, name)
		i++
	}
}
