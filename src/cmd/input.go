package cmd

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "random",
			Aliases: []string{"r"},
			Usage:   "sort N random values instead of the given ones",
		},
		&cli.IntFlag{
			Name:  "min",
			Value: 10,
			Usage: "lower bound of random values",
		},
		&cli.IntFlag{
			Name:  "max",
			Value: 300,
			Usage: "upper bound of random values",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for random values (0 means time based)",
		},
	}
}

// ParseValues converts command line arguments to finite numbers.
func ParseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", arg)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Errorf("invalid value %q: not a finite number", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// RandomValues returns n integers drawn uniformly from [min, max].
func RandomValues(rng *rand.Rand, n, min, max int) ([]float64, error) {
	if n < 0 {
		return nil, errors.Errorf("invalid count %d", n)
	}
	if min > max {
		return nil, errors.Errorf("invalid range [%d, %d]", min, max)
	}
	values := make([]float64, n)
	for i := range values {
		values[i] = float64(rng.Intn(max-min+1) + min)
	}
	return values, nil
}

func loadValues(c *cli.Context) ([]float64, error) {
	if !c.IsSet("random") {
		if c.NArg() == 0 {
			return nil, errors.New("no values given, pass numbers or --random N")
		}
		return ParseValues(c.Args().Slice())
	}
	if c.NArg() > 0 {
		return nil, errors.New("--random cannot be combined with explicit values")
	}
	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debugf("random input: n=%d range=[%d, %d] seed=%d", c.Int("random"), c.Int("min"), c.Int("max"), seed)
	return RandomValues(rand.New(rand.NewSource(seed)), c.Int("random"), c.Int("min"), c.Int("max"))
}
