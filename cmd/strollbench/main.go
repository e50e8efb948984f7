// Copyright (c) 2025 Grégor Boirie
// SPDX-License-Identifier: MIT

package main

import "github.com/gboirie/stroll/cmd/strollbench/cmd"

func main() {
	cmd.Execute()
}
