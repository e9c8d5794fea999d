// Package config loads layered YAML configuration for flowkit workflows.
//
// Documents are parsed with two extra tags:
//
//	prompt: !read [prompts, system.txt]   # contents of prompts/system.txt
//	name:   !join [run-, 3]              # "run-3"
//
// Several files are folded together in order; later files override earlier
// ones key by key, recursing into nested mappings:
//
//	tree, err := config.LoadYAMLFiles("base.yml", "local.yml")
//
// A merged tree can be decoded into a struct with Decode or LoadInto, which
// also fill defaults and run `validate` tag checks.
package config
