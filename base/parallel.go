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

import "sync"

// Parallel schedules and runs tasks in parallel. nTask is the number of tasks.
// nJob is the number of executors. worker is the executed function which is
// passed a task index in [0, nTask). The first non-nil error is returned after
// every job has stopped.
func Parallel(nTask, nJob int, worker func(i int) error) error {
	if nJob <= 1 {
		for i := 0; i < nTask; i++ {
			if err := worker(i); err != nil {
				return err
			}
		}
		return nil
	}
	var wg sync.WaitGroup
	wg.Add(nJob)
	errs := make([]error, nJob)
	for j := 0; j < nJob; j++ {
		go func(jobId int) {
			defer wg.Done()
			begin := nTask * jobId / nJob
			end := nTask * (jobId + 1) / nJob
			for i := begin; i < end; i++ {
				if errs[jobId] = worker(i); errs[jobId] != nil {
					return
				}
			}
		}(j)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
