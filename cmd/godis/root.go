package main

import (
	"github.com/spf13/cobra"

	"github.com/aaronwong1989/godis/comm/config"
	"github.com/aaronwong1989/godis/comm/logging"
)

var log = logging.GetDefaultLogger()

type app struct {
	confPath string
	conf     config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "godis",
		Short: "DIS 7 PDU codec and UDP listener",
		Long: `godis decodes and encodes IEEE 1278.1 (DIS 7) protocol data units.

It can listen for PDUs on UDP, decode hex dumps of captured datagrams
and produce sample PDUs for testing other simulators.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			conf, err := config.Load(a.confPath)
			if err != nil {
				return err
			}
			a.conf = conf
			logging.Configure(conf.Log)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.confPath, "config", "c", "", "yaml config file, defaults to $"+config.EnvConfPath)

	root.AddCommand(newServeCmd(a), newDecodeCmd(a), newSampleCmd(a))
	return root
}
