// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package kube

import (
	"carvel.dev/kchart/pkg/render"
)

type Job struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *JobSpec
}

var _ render.Object = Job{}

func (j Job) ObjectKind() render.ObjectKind { return j.TypeMeta.objectKind("Job") }

func (j Job) Fields() []render.Field {
	return withMetadata(j.Metadata, render.Attr("spec", j.Spec))
}

type JobSpec struct {
	Template                PodTemplateSpec
	Parallelism             *int32
	Completions             *int32
	ActiveDeadlineSeconds   *int64
	BackoffLimit            *int32
	Selector                *LabelSelector
	ManualSelector          *bool
	TTLSecondsAfterFinished *int32
	CompletionMode          *string
	Suspend                 *bool
}

func (s JobSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("parallelism", s.Parallelism),
		render.Attr("completions", s.Completions),
		render.Attr("active_deadline_seconds", s.ActiveDeadlineSeconds),
		render.Attr("backoff_limit", s.BackoffLimit),
		render.Attr("selector", s.Selector),
		render.Attr("manual_selector", s.ManualSelector),
		render.Attr("template", s.Template),
		render.Attr("ttl_seconds_after_finished", s.TTLSecondsAfterFinished),
		render.Attr("completion_mode", s.CompletionMode),
		render.Attr("suspend", s.Suspend),
	}
}

type CronJob struct {
	TypeMeta
	Metadata *ObjectMeta
	Spec     *CronJobSpec
}

var _ render.Object = CronJob{}

func (c CronJob) ObjectKind() render.ObjectKind { return c.TypeMeta.objectKind("CronJob") }

func (c CronJob) Fields() []render.Field {
	return withMetadata(c.Metadata, render.Attr("spec", c.Spec))
}

type CronJobSpec struct {
	Schedule                   string
	JobTemplate                JobTemplateSpec
	TimeZone                   *string
	StartingDeadlineSeconds    *int64
	ConcurrencyPolicy          *string
	Suspend                    *bool
	SuccessfulJobsHistoryLimit *int32
	FailedJobsHistoryLimit     *int32
}

func (s CronJobSpec) Fields() []render.Field {
	return []render.Field{
		render.Attr("schedule", s.Schedule),
		render.Attr("time_zone", s.TimeZone),
		render.Attr("starting_deadline_seconds", s.StartingDeadlineSeconds),
		render.Attr("concurrency_policy", s.ConcurrencyPolicy),
		render.Attr("suspend", s.Suspend),
		render.Attr("job_template", s.JobTemplate),
		render.Attr("successful_jobs_history_limit", s.SuccessfulJobsHistoryLimit),
		render.Attr("failed_jobs_history_limit", s.FailedJobsHistoryLimit),
	}
}

type JobTemplateSpec struct {
	Metadata *ObjectMeta
	Spec     *JobSpec
}

func (t JobTemplateSpec) Fields() []render.Field {
	return withMetadata(t.Metadata, render.Attr("spec", t.Spec))
}
