package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/aaronwong1989/godis/codec/dis7"
)

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode HEX...",
		Short: "Decode hex dumps of DIS datagrams",
		Long: `Decode hex dumps of DIS datagrams and print every PDU found.

Each argument is one datagram. Whitespace and colons inside a dump are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := dis7.DefaultRegistry()
			registry.StrictLength = a.conf.Codec.StrictLength
			registry.SkipUnknown = a.conf.Codec.SkipUnknown

			for i, arg := range args {
				data, err := parseHex(arg)
				if err != nil {
					return errors.Wrapf(err, "datagram %d", i)
				}
				pdus, err := registry.DecodeStream(data)
				for _, pdu := range pdus {
					fmt.Fprintln(cmd.OutOrStdout(), pdu)
				}
				if err != nil {
					return errors.Wrapf(err, "datagram %d", i)
				}
			}
			return nil
		},
	}
}

func parseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
