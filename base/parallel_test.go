// Copyright 2023 floatx Project Authors
//
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
package base

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallel(t *testing.T) {
	a := make([]int, 10000)
	for i := range a {
		a[i] = i
	}
	b := make([]int, len(a))
	// multiple jobs
	err := Parallel(len(a), 4, func(i int) error {
		b[i] = a[i]
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
	// single job
	b = make([]int, len(a))
	err = Parallel(len(a), 1, func(i int) error {
		b[i] = a[i]
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParallelFail(t *testing.T) {
	// multiple jobs
	err := Parallel(10000, 4, func(i int) error {
		if i%2 == 1 {
			return fmt.Errorf("error from %d", i)
		}
		return nil
	})
	assert.Error(t, err)
	// single job
	err = Parallel(10000, 1, func(i int) error {
		if i%2 == 1 {
			return fmt.Errorf("error from %d", i)
		}
		return nil
	})
	assert.Error(t, err)
}
