package main

import (
	"fmt"

	"github.com/yanqian/datetime/pkg/util"
)

func main() {
	fmt.Println(util.CurrentDateTime())
}
