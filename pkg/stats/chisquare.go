// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrSampleSize = errors.New("stats: sample size mismatch")

// Balance tests whether two counts are consistent with an even split
// between them. It returns the chi-square statistic with one degree of
// freedom and its p-value. A p-value of 1 is returned when both counts are
// zero.
func Balance(a, b int) (chi2, p float64) {
	n := float64(a + b)
	if n == 0 {
		return 0, 1
	}

	expected := n / 2
	chi2 = sq(float64(a)-expected)/expected + sq(float64(b)-expected)/expected

	return chi2, pValue(chi2, 1)
}

// Homogeneity tests whether two vectors of category counts were drawn from
// the same distribution. Categories which are empty in both samples are
// ignored. It returns the chi-square statistic and its p-value.
func Homogeneity(a, b []int) (chi2, p float64, err error) {
	if len(a) != len(b) {
		return 0, 0, ErrSampleSize
	}

	var totalA, totalB float64
	for i := range a {
		totalA += float64(a[i])
		totalB += float64(b[i])
	}

	if totalA == 0 || totalB == 0 {
		return 0, 1, nil
	}

	total := totalA + totalB

	categories := 0
	for i := range a {
		column := float64(a[i] + b[i])
		if column == 0 {
			continue
		}

		categories++

		expectedA := totalA * column / total
		expectedB := totalB * column / total

		chi2 += sq(float64(a[i])-expectedA) / expectedA
		chi2 += sq(float64(b[i])-expectedB) / expectedB
	}

	if categories < 2 {
		return 0, 1, nil
	}

	return chi2, pValue(chi2, float64(categories-1)), nil
}

// pValue returns the upper tail probability of the chi-square distribution
// with k degrees of freedom.
func pValue(chi2, k float64) float64 {
	return distuv.ChiSquared{K: k}.Survival(chi2)
}

func sq(x float64) float64 {
	return x * x
}
