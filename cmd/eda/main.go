// eda reads newline-separated numbers from stdin and describes their
// distribution. With -dist it also fits the named distribution family
// by maximum likelihood, and with -gen emits a synthetic sample of the
// same length drawn from stdin's fitted distribution.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/sgrant/go-eda/dist"
	"github.com/sgrant/go-eda/stats"
)

var (
	distName = flag.String("dist", "", fmt.Sprintf("fit this distribution family; one of %s", strings.Join(dist.Names(), ", ")))
	gen      = flag.Bool("gen", false, "print a synthetic sample drawn from the fitted distribution")
	seed     = flag.Uint64("seed", 0, "random seed for -gen; 0 uses the shared global source")
)

func main() {
	flag.Parse()
	log := logrus.StandardLogger()

	s := stats.Sample{Xs: readInput(os.Stdin)}
	sum := s.Summary()

	fmt.Printf("N %d  mean %.6g  std dev %.6g", sum.N, sum.Mean, sum.StdDev)
	if gmean := s.GeoMean(); !math.IsNaN(gmean) {
		fmt.Printf("  gmean %.6g", gmean)
	}
	fmt.Println()
	fmt.Printf("min %.6g  25%% %.6g  median %.6g  75%% %.6g  max %.6g\n",
		sum.Min, sum.Q1, sum.Median, sum.Q3, sum.Max)
	fmt.Printf("skewness %.6g  excess kurtosis %.6g\n", sum.Skewness, sum.ExKurtosis)

	if *distName == "" {
		return
	}

	f, err := dist.Resolve(*distName)
	if err != nil {
		log.Fatal(err)
	}
	p, err := f.Fit(s.Xs)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println()
	fmt.Printf("fitted %s:", f.Name())
	for i, name := range f.ParamNames() {
		fmt.Printf("  %s %.6g", name, p[i])
	}
	fmt.Println()

	if *gen {
		g := dist.Generator{}
		if *seed != 0 {
			g.Src = rand.NewSource(*seed)
		}
		out, err := g.Generate(s.Xs, *distName)
		if err != nil {
			log.Fatal(err)
		}
		for _, v := range out {
			fmt.Println(v)
		}
	}
}

func readInput(r io.Reader) []float64 {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return xs
}
