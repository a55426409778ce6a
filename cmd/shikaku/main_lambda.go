//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/andryr/shikaku"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveRequest struct {
	Grid      string `json:"grid"` // delimiter-separated rows, '\n' between rows
	Method    string `json:"method"`
	TimeoutMs int64  `json:"timeoutMs"`
	Seed      int64  `json:"seed"`
}

type solveResponse struct {
	Solved bool     `json:"solved"`
	Status string   `json:"status"`
	Rects  [][4]int `json:"rects,omitempty"`
	TimeMs int64    `json:"timeMs"`
	Detail string   `json:"detail,omitempty"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req solveRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if req.Grid == "" {
		return errResp(400, "missing grid field")
	}

	g, err := shikaku.ParseGrid(strings.NewReader(req.Grid))
	if err != nil {
		return errResp(400, "bad grid: "+err.Error())
	}

	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	var m shikaku.Method
	switch req.Method {
	case "", "gophersat":
		m = shikaku.ExactMethod(shikaku.GophersatBackend{}, timeout)
	case "gini":
		m = shikaku.ExactMethod(shikaku.GiniBackend{}, timeout)
	case "anneal":
		m = shikaku.AnnealMethod(req.Seed, shikaku.DefaultConfig())
	default:
		return errResp(400, "unknown method "+req.Method)
	}

	res, err := m.Solve(g)
	if err != nil {
		return errResp(500, err.Error())
	}

	resp := solveResponse{
		Solved: res.Solved,
		Status: res.Status.String(),
		TimeMs: res.Elapsed.Milliseconds(),
	}
	for _, r := range res.Rects {
		resp.Rects = append(resp.Rects, [4]int{r.RowMin, r.ColMin, r.RowMax, r.ColMax})
	}
	if res.Solved {
		resp.Detail = shikaku.FormatSolution(g, res)
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
