package cli

import (
	"fmt"
	"sort"
	"strconv"
)

type flagKind uint8

const (
	flagBool flagKind = iota + 1
	flagString
	flagInt
)

type flag struct {
	name      string
	shorthand rune
	usage     string
	kind      flagKind

	boolPtr   *bool
	stringPtr *string
	intPtr    *int
}

// FlagSet is a typed flag registry for a command.
type FlagSet struct {
	byName  map[string]*flag
	byShort map[rune]*flag
}

func newFlagSet() *FlagSet {
	return &FlagSet{
		byName:  map[string]*flag{},
		byShort: map[rune]*flag{},
	}
}

// Bool registers a boolean flag and returns a pointer to its value.
func (fs *FlagSet) Bool(name string, shorthand rune, def bool, usage string) *bool {
	ptr := new(bool)
	*ptr = def
	fs.add(&flag{name: name, shorthand: shorthand, usage: usage, kind: flagBool, boolPtr: ptr})
	return ptr
}

// String registers a string flag and returns a pointer to its value.
func (fs *FlagSet) String(name string, shorthand rune, def string, usage string) *string {
	ptr := new(string)
	*ptr = def
	fs.add(&flag{name: name, shorthand: shorthand, usage: usage, kind: flagString, stringPtr: ptr})
	return ptr
}

// Int registers an integer flag and returns a pointer to its value.
func (fs *FlagSet) Int(name string, shorthand rune, def int, usage string) *int {
	ptr := new(int)
	*ptr = def
	fs.add(&flag{name: name, shorthand: shorthand, usage: usage, kind: flagInt, intPtr: ptr})
	return ptr
}

func (fs *FlagSet) add(f *flag) {
	if f.name == "" {
		panic("cli: flag name must be non-empty")
	}
	if _, ok := fs.byName[f.name]; ok {
		panic("cli: duplicate flag: --" + f.name)
	}
	fs.byName[f.name] = f
	if f.shorthand != 0 {
		if _, ok := fs.byShort[f.shorthand]; ok {
			panic(fmt.Sprintf("cli: duplicate shorthand flag: -%c", f.shorthand))
		}
		fs.byShort[f.shorthand] = f
	}
}

func (f *flag) set(raw string) error {
	switch f.kind {
	case flagBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*f.boolPtr = v
	case flagString:
		*f.stringPtr = raw
	case flagInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*f.intPtr = v
	}
	return nil
}

func (f *flag) display() string {
	if f.shorthand != 0 {
		return fmt.Sprintf("-%c/--%s", f.shorthand, f.name)
	}
	return "--" + f.name
}

func (f *flag) kindName() string {
	switch f.kind {
	case flagString:
		return "string"
	case flagInt:
		return "int"
	default:
		return "bool"
	}
}

// flagsInScope gathers the flags visible to cmd: persistent flags from
// the path down from the root, then cmd's local flags. Name collisions
// across the path are a programming error.
func flagsInScope(cmd *Command) (map[string]*flag, map[rune]*flag) {
	byName := map[string]*flag{}
	byShort := map[rune]*flag{}

	merge := func(fs *FlagSet) {
		if fs == nil {
			return
		}
		for _, f := range fs.byName {
			if existing, ok := byName[f.name]; ok && existing != f {
				panic("cli: flag name conflict across command path: --" + f.name)
			}
			byName[f.name] = f
			if f.shorthand != 0 {
				if existing, ok := byShort[f.shorthand]; ok && existing != f {
					panic(fmt.Sprintf("cli: shorthand conflict across command path: -%c", f.shorthand))
				}
				byShort[f.shorthand] = f
			}
		}
	}

	for _, node := range cmd.path() {
		merge(node.persistentFlags)
	}
	merge(cmd.localFlags)
	return byName, byShort
}

func sortedFlags(byName map[string]*flag) []*flag {
	out := make([]*flag, 0, len(byName))
	for _, f := range byName {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}
