package main

import (
	"fmt"
	"os"

	"github.com/harkal/owned"
	cli "github.com/urfave/cli"
	"github.com/urfave/cli/altsrc"
)

type blob struct {
	id   int
	data []byte
}

var blobsFreed int

func (b *blob) Dispose() {
	blobsFreed++
}

// workoutConfig sits in the process wide slot so the run helpers read one
// shared configuration.
type workoutConfig struct {
	objects   int
	cacheSize int
}

func workoutCmd(c *cli.Context) error {
	owned.Static[workoutConfig]{}.Reset(&workoutConfig{
		objects:   c.Int("objects"),
		cacheSize: c.Int("cache"),
	})
	defer owned.Static[workoutConfig]{}.Reset(nil)

	return runWorkout()
}

func runWorkout() error {
	cfg := owned.Static[workoutConfig]{}.Get()

	cache, err := owned.NewSharedCache[int, blob](cfg.cacheSize)
	if err != nil {
		return err
	}

	owners := make([]*owned.Shared[blob], 0, cfg.objects)
	observers := make([]*owned.Weak[blob], 0, cfg.objects)
	for i := 0; i < cfg.objects; i++ {
		s := owned.NewShared(&blob{id: i, data: make([]byte, 4096)})
		cache.Put(i, s)
		observers = append(observers, owned.NewWeak(s))
		owners = append(owners, s)
	}

	// Drop the direct owners. Everything the cache already evicted dies
	// here; the resident tail stays alive on the cache's references.
	for _, s := range owners {
		s.Release()
	}

	observable := 0
	for _, w := range observers {
		if h := w.Lock(); !h.IsNull() {
			observable++
			h.Release()
		}
	}

	// An exclusive ownership chain for good measure.
	u := owned.MakeUnique(blob{id: -1})
	moved := u.Move()
	moved.Reset(&blob{id: -2})
	moved.Close()

	st := owned.Snapshot()
	fmt.Println("  Ownership workout ")
	fmt.Println("=================================")
	fmt.Printf(" Objects    : %d\n", cfg.objects)
	fmt.Printf(" Cache size : %d\n", cfg.cacheSize)
	fmt.Printf(" Resident   : %d\n", cache.Len())
	fmt.Printf(" Observable : %d\n", observable)
	fmt.Printf(" Freed      : %d\n", blobsFreed)
	fmt.Printf(" Live       : %d\n", st.Live)
	fmt.Printf(" Adopted    : %d\n", st.Adopted)
	fmt.Printf(" Watermark  : %d\n", st.Watermark)
	fmt.Println("=================================")

	cache.Purge()
	return nil
}

func infoCmd(c *cli.Context) error {
	st := owned.Snapshot()

	fmt.Println("  Ownership accounting ")
	fmt.Println("=================================")
	fmt.Printf(" Live       : %d\n", st.Live)
	fmt.Printf(" Adopted    : %d\n", st.Adopted)
	fmt.Printf(" Freed      : %d\n", st.Freed)
	fmt.Printf(" Watermark  : %d\n", st.Watermark)
	fmt.Println("=================================")

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "Owned Tool"
	app.Version = "0.0.1"
	app.Authors = []cli.Author{
		cli.Author{
			Name:  "Harry Kalogirou",
			Email: "harkal@nlogn.eu",
		},
	}
	app.Copyright = "(c) 2021 Harry Kalogirou"
	app.Usage = "Exercise the ownership handles and report the accounting"

	genericFlags := []cli.Flag{
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "objects",
			Usage: "Number of shared objects to create",
			Value: 1024,
		}),
		altsrc.NewIntFlag(cli.IntFlag{
			Name:  "cache",
			Usage: "Resident capacity of the shared cache",
			Value: 256,
		}),
	}

	app.Commands = []cli.Command{
		{
			Name:    "workout",
			Aliases: []string{"w"},
			Usage:   "Run an ownership workout",
			Flags:   genericFlags,
			Action:  workoutCmd,
		},
		{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "Print the accounting snapshot",
			Action:  infoCmd,
		},
	}

	app.Run(os.Args)
}
