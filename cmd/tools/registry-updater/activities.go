package main

import (
	"encoding/json"
	"fmt"
	"time"

	"deal-advisor-workers/internal/common/errors"
	"deal-advisor-workers/internal/common/validation"
	ra "deal-advisor-workers/internal/workers/access/remember-access"
	gt "deal-advisor-workers/internal/workers/advice/generate-tips"
	ad "deal-advisor-workers/internal/workers/analysis/analyze-deal"
	er "deal-advisor-workers/internal/workers/finance/estimate-rates"
	li "deal-advisor-workers/internal/workers/finance/list-incentives"
	bf "deal-advisor-workers/internal/workers/pricing/breakdown-fees"
	ep "deal-advisor-workers/internal/workers/pricing/estimate-price"
	"deal-advisor-workers/pkg/registry"
)

// descriptor is the source of truth for one task type's registry entry.
type descriptor struct {
	taskType    string
	displayName string
	description string
	category    string
	timeout     time.Duration
	input       validation.JSONSchema
	output      validation.JSONSchema
	errorCodes  []errors.ErrorCode
	tags        []string
}

func descriptors(currentYear int) []descriptor {
	queryErrors := []errors.ErrorCode{errors.ErrCodeInvalidJobInput, errors.ErrCodeInvalidVehicleQuery}

	return []descriptor{
		{
			taskType:    ep.TaskType,
			displayName: "Estimate Price",
			description: "Estimates low/median/high price bands plus MSRP and invoice for a vehicle.",
			category:    "pricing",
			timeout:     ep.DefaultConfig().Timeout,
			input:       ep.GetInputSchema(currentYear),
			output:      ep.GetOutputSchema(),
			errorCodes:  append(queryErrors, errors.ErrCodePricingFetchFailed, errors.ErrCodePricingTimeout),
			tags:        []string{"pricing", "depreciation"},
		},
		{
			taskType:    bf.TaskType,
			displayName: "Break Down Fees",
			description: "Lists typical dealer fees split into negotiable and non-negotiable.",
			category:    "pricing",
			timeout:     bf.DefaultConfig().Timeout,
			input:       bf.GetInputSchema(currentYear),
			output:      bf.GetOutputSchema(),
			errorCodes:  queryErrors,
			tags:        []string{"fees"},
		},
		{
			taskType:    er.TaskType,
			displayName: "Estimate Rates",
			description: "Estimates APR ranges per credit score tier.",
			category:    "finance",
			timeout:     er.DefaultConfig().Timeout,
			input:       er.GetInputSchema(currentYear),
			output:      er.GetOutputSchema(),
			errorCodes:  queryErrors,
			tags:        []string{"finance", "apr"},
		},
		{
			taskType:    li.TaskType,
			displayName: "List Incentives",
			description: "Lists manufacturer rebates and financing offers.",
			category:    "finance",
			timeout:     li.DefaultConfig().Timeout,
			input:       li.GetInputSchema(currentYear),
			output:      li.GetOutputSchema(),
			errorCodes:  queryErrors,
			tags:        []string{"finance", "incentives"},
		},
		{
			taskType:    gt.TaskType,
			displayName: "Generate Negotiation Tips",
			description: "Produces ordered negotiation advice from the query and its price bands.",
			category:    "advice",
			timeout:     gt.DefaultConfig().Timeout,
			input:       gt.GetInputSchema(currentYear),
			output:      gt.GetOutputSchema(),
			errorCodes:  queryErrors,
			tags:        []string{"advice"},
		},
		{
			taskType:    ad.TaskType,
			displayName: "Analyze Deal",
			description: "Runs every generator for a query and returns the combined deal analysis.",
			category:    "analysis",
			timeout:     ad.DefaultConfig().Timeout,
			input:       ad.GetInputSchema(currentYear),
			output:      ad.GetOutputSchema(),
			errorCodes:  append(queryErrors, errors.ErrCodeAnalysisFailed),
			tags:        []string{"analysis", "orchestration"},
		},
		{
			taskType:    ra.TaskType,
			displayName: "Remember Access",
			description: "Grants a visitor access and remembers it in Redis when requested.",
			category:    "access",
			timeout:     ra.DefaultConfig().Timeout,
			input:       ra.GetInputSchema(),
			output:      ra.GetOutputSchema(),
			errorCodes:  []errors.ErrorCode{errors.ErrCodeInvalidJobInput, errors.ErrCodeAccessStoreFailed},
			tags:        []string{"access", "redis"},
		},
	}
}

func schemaMap(s validation.JSONSchema) (map[string]interface{}, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toActivity renders d as a registry entry. Retries is the largest retry budget of any
// error the task can raise.
func (d descriptor) toActivity(version, status string, workflows []string) (registry.Activity, error) {
	in, err := schemaMap(d.input)
	if err != nil {
		return registry.Activity{}, fmt.Errorf("%s input schema: %w", d.taskType, err)
	}
	out, err := schemaMap(d.output)
	if err != nil {
		return registry.Activity{}, fmt.Errorf("%s output schema: %w", d.taskType, err)
	}

	codes := make([]string, len(d.errorCodes))
	retries := 0
	for i, c := range d.errorCodes {
		if bpmn, ok := errors.BPMNErrorMapping[c]; ok {
			codes[i] = bpmn
		} else {
			codes[i] = string(c)
		}
		if n := errors.GetRetryCount(c); n > retries {
			retries = n
		}
	}

	if workflows == nil {
		workflows = []string{}
	}
	return registry.Activity{
		ID:                   d.taskType,
		DisplayName:          d.displayName,
		Description:          d.description,
		Category:             d.category,
		Version:              version,
		TaskType:             d.taskType,
		ImplementationStatus: status,
		InputSchema:          in,
		OutputSchema:         out,
		ErrorCodes:           codes,
		Timeout:              d.timeout.String(),
		Retries:              retries,
		Workflows:            workflows,
		Tags:                 d.tags,
	}, nil
}
