// Copyright 2026 The Tyche Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"github.com/spf13/cobra"

	"github.com/trrad/tyche/internal/scenario"
)

var (
	describeDist   string
	describeParams []string
	describeAt     []float64
	describeP      []float64
)

// pointEval is the density and CDF of the distribution at one point.
type pointEval struct {
	X       float64 `json:"x"`
	Prob    float64 `json:"prob"`
	LogProb float64 `json:"logprob"`
	CDF     float64 `json:"cdf"`
}

// quantileEval is the inverse CDF at one probability.
type quantileEval struct {
	P float64 `json:"p"`
	X float64 `json:"x"`
}

type description struct {
	Dist      string             `json:"dist"`
	Params    map[string]float64 `json:"params"`
	Analytic  scenario.Moments   `json:"analytic"`
	Points    []pointEval        `json:"points,omitempty"`
	Quantiles []quantileEval     `json:"quantiles,omitempty"`
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Evaluate a distribution's density, CDF and quantiles",
	Long: `Print a distribution's analytic moments, its density and CDF at the points
given with --at, and its quantiles at the probabilities given with --p.

Examples:
  tyche describe --dist normal --param mu=0 --param sigma=1 --at -1.96,0,1.96
  tyche describe --dist beta --param alpha=2 --param beta=5 --p 0.025,0.5,0.975`,
	RunE: runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeDist, "dist", "",
		"Distribution: normal, lognormal, gamma or beta")
	describeCmd.Flags().StringArrayVar(&describeParams, "param", nil,
		"Distribution parameter as name=value; repeatable")
	describeCmd.Flags().Float64SliceVar(&describeAt, "at", nil,
		"Points at which to evaluate the density and CDF")
	describeCmd.Flags().Float64SliceVar(&describeP, "p", nil,
		"Probabilities at which to evaluate the quantile function")
	_ = describeCmd.MarkFlagRequired("dist")
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	params, err := parseParams(describeParams)
	if err != nil {
		return err
	}
	d, err := scenario.New(describeDist, params, nil)
	if err != nil {
		return err
	}

	desc := description{
		Dist:   describeDist,
		Params: params,
		Analytic: scenario.Moments{
			Mean:     d.Mean(),
			Median:   d.Median(),
			Variance: d.Variance(),
			StdDev:   d.StdDev(),
		},
	}
	for _, x := range describeAt {
		desc.Points = append(desc.Points, pointEval{
			X:       x,
			Prob:    d.Prob(x),
			LogProb: d.LogProb(x),
			CDF:     d.CDF(x),
		})
	}
	for _, p := range describeP {
		desc.Quantiles = append(desc.Quantiles, quantileEval{P: p, X: d.Quantile(p)})
	}

	return printJSON(desc)
}
