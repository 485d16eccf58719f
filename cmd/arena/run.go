package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/events"
	"github.com/automoto/doomerang-arena/logger"
	"github.com/automoto/doomerang-arena/sim"
)

var (
	ticks     int
	realtime  bool
	autopilot bool
	untilOver bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless",
	Long: `Run the arena without a window for a number of ticks, logging every
hit and death, and print a summary at the end.`,
	RunE: runArena,
}

func init() {
	runCmd.Flags().IntVar(&ticks, "ticks", 3600, "number of ticks to simulate")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "step at the configured tick rate instead of as fast as possible")
	runCmd.Flags().BoolVar(&autopilot, "autopilot", true, "let a simple script fight for the player")
	runCmd.Flags().BoolVar(&untilOver, "until-over", true, "stop once the player or every enemy is dead")
}

func runArena(cmd *cobra.Command, args []string) error {
	level, err := loadLevel()
	if err != nil {
		return err
	}
	s := sim.New(level, simSeed())
	logEvents(s.World())

	var p *pilot
	if autopilot {
		p = newPilot()
	}
	done := func(s *sim.Sim) bool {
		p.drive(s)
		return untilOver && s.Over()
	}

	if realtime {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.For("cli").Info("received shutdown signal, stopping")
			cancel()
		}()

		loop := sim.NewLoop(s, config.Sim.TickRate)
		p.drive(s)
		loop.OnTick(func(s *sim.Sim) bool {
			return !done(s) && s.Arena().Tick < ticks
		})
		if err := loop.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
	} else {
		dt := 1 / float64(config.Sim.TickRate)
		p.drive(s)
		s.RunTicks(ticks, dt, done)
	}

	printSummary(cmd, s.Summary())
	return nil
}

func logEvents(w donburi.World) {
	log := logger.For("arena")
	events.Hit.Subscribe(w, func(_ donburi.World, hit events.HitEvent) {
		log.WithFields(logrus.Fields{
			"attacker":       hit.Attacker,
			"defender":       hit.Defender,
			"amount":         hit.Amount,
			"against_player": hit.AgainstPlayer,
			"blocked":        hit.Blocked,
			"x":              int(hit.Position.X),
			"y":              int(hit.Position.Y),
		}).Info("hit")
	})
	events.Death.Subscribe(w, func(_ donburi.World, death events.DeathEvent) {
		log.WithFields(logrus.Fields{
			"entity": death.Entity,
			"player": death.IsPlayer,
		}).Info("death")
	})
}

func printSummary(cmd *cobra.Command, sum sim.Summary) {
	out := cmd.OutOrStdout()
	outcome := "undecided"
	switch {
	case sum.PlayerDead:
		outcome = "player died"
	case sum.EnemiesAlive == 0:
		outcome = "arena cleared"
	}
	fmt.Fprintf(out, "outcome:       %s\n", outcome)
	fmt.Fprintf(out, "ticks:         %d (%.1fs)\n", sum.Ticks, sum.Time)
	fmt.Fprintf(out, "player health: %d\n", sum.PlayerHealth)
	fmt.Fprintf(out, "enemies alive: %d\n", sum.EnemiesAlive)
	fmt.Fprintf(out, "kills:         %d\n", sum.Kills)
	fmt.Fprintf(out, "hits:          %d\n", sum.Hits)
	fmt.Fprintf(out, "damage dealt:  %d\n", sum.DamageDealt)
}
