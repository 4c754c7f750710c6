package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aaronwong1989/godis/codec/dis7"
	"github.com/aaronwong1989/godis/comm"
	"github.com/aaronwong1989/godis/server"
)

func newServeCmd(a *app) *cobra.Command {
	var address string
	var pprofPort int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Listen for DIS PDUs on UDP and log them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := a.conf
			if address != "" {
				conf.Listen.Address = address
			}
			log.Infof("current pid is %s.", comm.SavePid("godis.pid"))
			if pprofPort > 0 {
				comm.StartMonitor(pprofPort)
			}

			srv, err := server.New(conf, func(from net.Addr, pdu dis7.Pdu) {
				log.Infof("[%-9s] <<< %v %s", "Handler", from, pdu)
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Stop(shutdown); err != nil {
					log.Warnf("[%-9s] stop: %v", "Serve", err)
				}
			}()
			return srv.Run()
		},
	}
	cmd.Flags().StringVar(&address, "address", "", "listen address, overrides listen.address")
	cmd.Flags().IntVar(&pprofPort, "pprof", 0, "serve pprof on this port, 0 disables")
	return cmd
}
