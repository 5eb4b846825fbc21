package config

import "fmt"

// Manifest is the unified, format-agnostic representation of a run.
type Manifest struct {
	Jobs []*Job
}

// Job asks for one puzzle to be solved against one input file.
type Job struct {
	// Name is the label the job was declared with.
	Name string
	Day  int
	// Part selects a single part. Zero means every registered part of Day.
	Part int
	// InputPath is absolute or relative to the working directory.
	InputPath string
	// Expect is the answer the job must produce, if known.
	Expect *int
	// Source is the file the job was declared in. Empty for CLI jobs.
	Source string
}

// Validate checks the job's fields are in range.
func (j *Job) Validate() error {
	if j.Day < 1 {
		return fmt.Errorf("job %q: day must be at least 1, got %d", j.Name, j.Day)
	}
	if j.Part < 0 || j.Part > 2 {
		return fmt.Errorf("job %q: part must be 0, 1 or 2, got %d", j.Name, j.Part)
	}
	if j.InputPath == "" {
		return fmt.Errorf("job %q: input is required", j.Name)
	}
	if j.Expect != nil && j.Part == 0 {
		return fmt.Errorf("job %q: expect requires a single part", j.Name)
	}
	return nil
}
