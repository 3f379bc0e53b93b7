package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/csspos/poscli"
)

func main() {
	xmain.Main(poscli.Run)
}
