// Copyright 2023 The ntree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command ntreedemo loads random points into a quadtree and then runs
// range queries against it from several goroutines at once, while a
// writer keeps inserting and removing points.
package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gogama/ntree/region"
)

var (
	log = logrus.New()

	cfg config
)

// config holds the command-line settings.
type config struct {
	points    int
	capacity  uint
	maxDepth  int
	queries   int
	workers   int
	halfSize  float64
	churn     int
	seed      int64
	logLevel  string
	dotPath   string
	extentMin float64
	extentMax float64
}

func init() {
	flag.IntVar(&cfg.points, "points", 1000000, "number of random points to insert")
	flag.UintVar(&cfg.capacity, "capacity", 8, "bucket capacity (1-255)")
	flag.IntVar(&cfg.maxDepth, "max-depth", 32, "maximum bucket depth")
	flag.IntVar(&cfg.queries, "queries", 1000, "number of range queries per worker")
	flag.IntVar(&cfg.workers, "workers", 4, "number of concurrent query workers")
	flag.Float64Var(&cfg.halfSize, "half-size", 5, "half of the side length of each square query")
	flag.IntVar(&cfg.churn, "churn", 1000, "number of insert/remove pairs done while querying")
	flag.Int64Var(&cfg.seed, "seed", 0, "random seed (0 means use the clock)")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level")
	flag.StringVar(&cfg.dotPath, "dot", "", "write the final tree as a Graphviz DOT file to this path")
	flag.Float64Var(&cfg.extentMin, "min", 50, "lower bound of the indexed square on both axes")
	flag.Float64Var(&cfg.extentMax, "max", 150, "upper bound of the indexed square on both axes")
}

func setupLogging() {
	level, err := logrus.ParseLevel(cfg.logLevel)
	if err != nil {
		log.Fatal("invalid log level: ", err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()
	setupLogging()

	if cfg.capacity < 1 || cfg.capacity > 255 {
		log.Fatalf("capacity must be in 1..255, got %d", cfg.capacity)
	}
	if cfg.maxDepth < 1 {
		log.Fatalf("max depth must be at least 1, got %d", cfg.maxDepth)
	}
	if cfg.workers < 1 {
		log.Fatalf("workers must be at least 1, got %d", cfg.workers)
	}
	if !(cfg.extentMin < cfg.extentMax) {
		log.Fatalf("empty extent [%g, %g)", cfg.extentMin, cfg.extentMax)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"points":   cfg.points,
		"capacity": cfg.capacity,
		"maxDepth": cfg.maxDepth,
		"workers":  cfg.workers,
		"seed":     cfg.seed,
	}).Debug("config")

	extent := region.NewBox(cfg.extentMin, cfg.extentMin, cfg.extentMax, cfg.extentMax)
	idx := newIndex(extent, uint8(cfg.capacity), cfg.maxDepth)
	gen := newGenerator(cfg.seed, extent)

	start := time.Now()
	inserted := load(idx, gen, cfg.points)
	log.WithFields(logrus.Fields{
		"inserted": inserted,
		"elapsed":  time.Since(start),
	}).Info("loaded points")
	log.Info(idx)
	sample := gen.point()
	log.WithFields(logrus.Fields{
		"point":  sample,
		"bucket": idx.nearby(sample),
	}).Debug("co-located points")

	start = time.Now()
	found, err := run(mainCtx, idx, gen)
	if err != nil {
		log.Fatal("query run failed: ", err)
	}
	log.WithFields(logrus.Fields{
		"queries": cfg.queries * cfg.workers,
		"found":   found,
		"elapsed": time.Since(start),
	}).Info("queried points")

	if err = idx.check(); err != nil {
		log.Fatal("tree is corrupt: ", err)
	}
	if cfg.dotPath != "" {
		if err = writeDot(idx, cfg.dotPath); err != nil {
			log.Fatal("unable to write DOT file: ", err)
		}
		log.Infof("wrote DOT graph to %s", cfg.dotPath)
	}
}

// generator produces random points and query boxes within an extent.
type generator struct {
	r      *rand.Rand
	extent region.Box
}

func newGenerator(seed int64, extent region.Box) *generator {
	return &generator{r: rand.New(rand.NewSource(seed)), extent: extent}
}

func (g *generator) point() region.Point2 {
	return region.Point2{
		X: g.extent.XMin + g.r.Float64()*g.extent.Width(),
		Y: g.extent.YMin + g.r.Float64()*g.extent.Height(),
	}
}

func (g *generator) query(halfSize float64) region.Box {
	c := g.point()
	return region.Box{XMin: c.X - halfSize, YMin: c.Y - halfSize, XMax: c.X + halfSize, YMax: c.Y + halfSize}
}

func load(idx *index, gen *generator, n int) int {
	var inserted int
	for i := 0; i < n; i++ {
		if idx.insert(gen.point()) {
			inserted++
		}
	}
	return inserted
}

// run executes the query workers alongside one churning writer and
// returns the total number of points found.
func run(ctx context.Context, idx *index, gen *generator) (int, error) {
	g, gCtx := errgroup.WithContext(ctx)
	found := make([]int, cfg.workers)
	for w := 0; w < cfg.workers; w++ {
		// Each worker gets its own generator; rand.Rand is not safe
		// for concurrent use.
		wg := newGenerator(gen.r.Int63(), gen.extent)
		g.Go(func() error {
			for q := 0; q < cfg.queries; q++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				found[w] += idx.count(wg.query(cfg.halfSize))
			}
			log.WithField("worker", w).Debugf("found %d points", found[w])
			return nil
		})
	}
	cg := newGenerator(gen.r.Int63(), gen.extent)
	g.Go(func() error {
		for i := 0; i < cfg.churn; i++ {
			if err := gCtx.Err(); err != nil {
				return err
			}
			p := cg.point()
			idx.insert(p)
			if !idx.remove(p) {
				log.WithField("point", p).Error("inserted point could not be removed")
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var total int
	for _, n := range found {
		total += n
	}
	return total, nil
}

func writeDot(idx *index, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.WriteDot(f)
}
