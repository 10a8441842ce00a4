// Package camundatest provides an in-memory worker.JobClient so handler tests can drive
// Handle and inspect what was reported to the broker.
package camundatest

import (
	"context"
	"sync"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"google.golang.org/grpc"
)

// Command names recorded in Call.Command.
const (
	CompleteJob = "CompleteJob"
	FailJob     = "FailJob"
	ThrowError  = "ThrowError"
)

// Call is one request that reached the gateway.
type Call struct {
	Command      string
	JobKey       int64
	Variables    string
	Retries      int32
	ErrorCode    string
	ErrorMessage string
	// CtxErr is the state of the request context when the command was sent.
	CtxErr error
}

// gateway answers the three job commands; every other RPC panics on the nil embedded client.
type gateway struct {
	pb.GatewayClient

	mu      sync.Mutex
	calls   []Call
	sendErr error
}

func (g *gateway) record(ctx context.Context, c Call) error {
	c.CtxErr = ctx.Err()
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, c)
	if g.sendErr != nil {
		return g.sendErr
	}
	return ctx.Err()
}

func (g *gateway) CompleteJob(ctx context.Context, in *pb.CompleteJobRequest, _ ...grpc.CallOption) (*pb.CompleteJobResponse, error) {
	if err := g.record(ctx, Call{Command: CompleteJob, JobKey: in.JobKey, Variables: in.Variables}); err != nil {
		return nil, err
	}
	return &pb.CompleteJobResponse{}, nil
}

func (g *gateway) FailJob(ctx context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	if err := g.record(ctx, Call{
		Command:      FailJob,
		JobKey:       in.JobKey,
		Variables:    in.Variables,
		Retries:      in.Retries,
		ErrorMessage: in.ErrorMessage,
	}); err != nil {
		return nil, err
	}
	return &pb.FailJobResponse{}, nil
}

func (g *gateway) ThrowError(ctx context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	if err := g.record(ctx, Call{
		Command:      ThrowError,
		JobKey:       in.JobKey,
		Variables:    in.Variables,
		ErrorCode:    in.ErrorCode,
		ErrorMessage: in.ErrorMessage,
	}); err != nil {
		return nil, err
	}
	return &pb.ThrowErrorResponse{}, nil
}

func noRetry(context.Context, error) bool { return false }

// JobClient implements worker.JobClient on top of the recording gateway.
type JobClient struct {
	gw *gateway
}

func NewJobClient() *JobClient {
	return &JobClient{gw: &gateway{}}
}

func (c *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.gw, noRetry)
}

func (c *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.gw, noRetry)
}

func (c *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.gw, noRetry)
}

// FailSends makes every later command return err after it is recorded.
func (c *JobClient) FailSends(err error) {
	c.gw.mu.Lock()
	c.gw.sendErr = err
	c.gw.mu.Unlock()
}

// Calls returns every request sent so far, in order.
func (c *JobClient) Calls() []Call {
	c.gw.mu.Lock()
	defer c.gw.mu.Unlock()
	out := make([]Call, len(c.gw.calls))
	copy(out, c.gw.calls)
	return out
}
