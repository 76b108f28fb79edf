// Command mudinfo prints a summary of a MUD file's section tree: its
// Fixed header and, for each top-level section (recursing into
// groups), its secID, instanceID, and on-wire size.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dfujim/gomud/mudfile"
	"github.com/dfujim/gomud/mudsec"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: mudinfo <file.msr>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	f, err := mudfile.ReadFile(path)
	if err != nil && f == nil {
		log.Fatalf("mudinfo: %s: %v", path, err)
	}
	if err != nil {
		log.Printf("mudinfo: %s: read ended early: %v", path, err)
	}

	fmt.Printf("%s: format %#x, file size %d bytes\n", path, f.Fixed.FormatID, f.Fixed.FileSize)
	for _, sec := range f.Sections {
		printSection(sec, 0)
	}
}

func printSection(sec mudsec.Section, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	core := sec.Core()
	fmt.Printf("%s- secID %#x instance %d size %d\n", indent, core.SecID, core.InstanceID, core.Size)
	if grp, ok := sec.(*mudsec.Group); ok {
		for _, m := range grp.Members {
			printSection(m, depth+1)
		}
	}
}
