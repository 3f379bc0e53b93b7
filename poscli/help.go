package poscli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/csspos/lib/version"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--x=left] [--y=top] [--x-edge=left] [--y-edge=top] --rect=x,y,w,h resolve
  %[1]s [--x=left] [--y=top] [--x-edge=left] [--y-edge=top] fmt

%[1]s resolves a CSS position (background-position, object-position) inside a
rectangle, or prints its canonical form.

Offsets take a unit (20px, 1.5em, 10vw) or a percentage (50%%). Pass negative
offsets with =, e.g. --x=-10px.

Flags:
%[3]s

Subcommands:
  %[1]s resolve - Print the resolved point as "x y" in px
  %[1]s fmt - Print the canonical serialization
  %[1]s version - Print the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Defaults())
}
