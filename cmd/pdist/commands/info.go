package commands

import (
	"fmt"
	"os"

	"github.com/marekgalovic/pdist/pkg/kernel"
	"github.com/marekgalovic/pdist/pkg/sysinfo"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

func SysInfo(c *cli.Context) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"property", "value"})
	table.AppendBulk(sysinfo.Collect().Rows())
	table.Render()
	return nil
}

func ListKernels(c *cli.Context) error {
	for _, name := range kernel.Names() {
		fmt.Println(name)
	}
	return nil
}
