package main

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/aaronwong1989/godis/codec"
	"github.com/aaronwong1989/godis/codec/dis7"
	"github.com/aaronwong1989/godis/comm"
	"github.com/aaronwong1989/godis/snowflake32"
)

var samples = map[string]func(sim *dis7.Simulation, text string) dis7.Pdu{
	"collision": func(sim *dis7.Simulation, _ string) dis7.Pdu {
		p := dis7.NewCollisionPdu()
		sim.Stamp(&p.Header)
		p.IssuingEntityID = sim.Entity(1)
		p.CollidingEntityID = sim.Entity(2)
		p.EventID = sim.NextEvent()
		p.Velocity = dis7.Vector3Float{X: 12.5, Y: -3}
		p.Mass = 1500
		p.Location = dis7.Vector3Float{X: 2.1, Y: 0.4, Z: 1}
		return p
	},
	"collision-elastic": func(sim *dis7.Simulation, _ string) dis7.Pdu {
		p := dis7.NewCollisionElasticPdu()
		sim.Stamp(&p.Header)
		p.IssuingEntityID = sim.Entity(1)
		p.CollidingEntityID = sim.Entity(2)
		p.CollisionEventID = sim.NextEvent()
		p.ContactVelocity = dis7.Vector3Float{X: 12.5, Y: -3}
		p.Mass = 1500
		p.LocationOfImpact = dis7.Vector3Float{X: 2.1, Y: 0.4, Z: 1}
		p.CollisionIntermediateResultXX = 1
		p.CollisionIntermediateResultYY = 1
		p.CollisionIntermediateResultZZ = 1
		p.UnitSurfaceNormal = dis7.Vector3Float{X: 1}
		p.CoefficientOfRestitution = 0.8
		return p
	},
	"acknowledge": func(sim *dis7.Simulation, _ string) dis7.Pdu {
		return sim.Acknowledge(sim.Entity(0), dis7.EntityID{Site: 0xffff, Application: 0xffff}, dis7.AckStartResume, 1, sim.NextRequestID())
	},
	"acknowledge-r": func(sim *dis7.Simulation, _ string) dis7.Pdu {
		p := dis7.NewAcknowledgeReliablePdu()
		sim.Stamp(&p.Header)
		p.OriginatingID = sim.Entity(0)
		p.ReceivingID = dis7.EntityID{Site: 0xffff, Application: 0xffff}
		p.AcknowledgeFlag = dis7.AckStartResume
		p.ResponseFlag = 1
		p.RequestID = sim.NextRequestID()
		return p
	},
	"comment": func(sim *dis7.Simulation, text string) dis7.Pdu {
		return sim.Comment(sim.Entity(0), dis7.EntityID{Site: 0xffff, Application: 0xffff}, 240000, text)
	},
}

func sampleKinds() []string {
	kinds := make([]string, 0, len(samples))
	for k := range samples {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newSampleCmd(a *app) *cobra.Command {
	var text string
	var count int
	cmd := &cobra.Command{
		Use:   "sample KIND",
		Short: "Print a hex encoded sample PDU",
		Long:  "Print a hex encoded sample PDU of KIND, one of: " + strings.Join(sampleKinds(), ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			build, ok := samples[args[0]]
			if !ok {
				return errors.Errorf("unknown sample %q, expected one of %s", args[0], strings.Join(sampleKinds(), ", "))
			}
			sim := &dis7.Simulation{
				ExerciseID: a.conf.ExerciseID,
				Address:    dis7.SimulationAddress{Site: a.conf.SiteID, Application: a.conf.ApplicationID},
				Events:     comm.NewCycleSequence(1),
				Requests:   snowflake32.NewSnowflake(a.conf.DataCenterId, a.conf.WorkerId),
			}
			for i := 0; i < count; i++ {
				pdu := build(sim, text)
				var data []byte
				if a.conf.Codec.StampLength {
					var err error
					if data, err = dis7.Marshal(pdu); err != nil {
						return err
					}
				} else {
					data = codec.Marshal(pdu)
				}
				log.Debugf("[%-9s] >>> %s", "Sample", pdu)
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(data))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "hello from godis", "comment text")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of PDUs to print")
	return cmd
}
