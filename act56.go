// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/actfamily/act56/hardware/cpu"
	"github.com/actfamily/act56/hardware/instance"
	"github.com/actfamily/act56/hardware/memory/rom"
	"github.com/actfamily/act56/logger"
	"github.com/actfamily/act56/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func newRootCmd() *cobra.Command {
	var prefsFile string

	ver, _, _ := version.Version()

	root := &cobra.Command{
		Use:     version.ApplicationName,
		Short:   "ACT core emulator",
		Version: ver,
	}
	root.PersistentFlags().StringVar(&prefsFile, "prefs", "act56.prefs", "preferences file")

	root.AddCommand(
		newRunCmd(&prefsFile, false),
		newRunCmd(&prefsFile, true),
		newVersionCmd(),
	)

	return root
}

func newRunCmd(prefsFile *string, trace bool) *cobra.Command {
	var maxTicks int

	use := "run <rom>"
	short := "run a ROM image until the instruction budget is exhausted"
	if trace {
		use = "trace <rom>"
		short = "run a ROM image, printing every instruction executed"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runROM(args[0], *prefsFile, trace, maxTicks)
		},
	}
	cmd.Flags().IntVar(&maxTicks, "max", 1_000_000, "instruction budget before stopping")

	return cmd
}

func newVersionCmd() *cobra.Command {
	var revision bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "print the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ver, rev, err := version.Version()
			if err != nil {
				return err
			}
			fmt.Println(ver)
			if revision && rev != "" {
				fmt.Println(rev)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&revision, "v", false, "display revision information (if available)")

	return cmd
}

// runROM loads filename as a ROM image (binary or octal listing, see
// rom.Load) and ticks the processor until either the instruction budget
// (maxTicks) is spent or Tick reports an error.
func runROM(filename, prefsFile string, trace bool, maxTicks int) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	img, err := rom.Load(f)
	if err != nil {
		return err
	}

	ins, err := instance.NewInstance(prefsFile, nil)
	if err != nil {
		return err
	}

	log := logger.NewLogger(1024)

	p := cpu.New(img, ins.Prefs.DataFileSize.Get(), log)
	p.ApplyPreferences(ins)
	p.SetTrace(trace || ins.Prefs.TraceOnStartup.Get())

	for i := 0; i < maxTicks; i++ {
		result, err := p.Tick()
		if err != nil {
			log.Write(os.Stdout)
			return err
		}
		if trace {
			fmt.Println(result.String())
		}
	}

	return nil
}
