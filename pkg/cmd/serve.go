// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"context"
	"fmt"
	"net"
	"os"

	json "github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lsp.dev/jsonrpc2"

	"github.com/ninflang/go-ninf/pkg/ninf"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the RPC bridge to an external type-checker driver.",
	Long: `Start a JSON-RPC 2.0 server exposing ninf/simplify, ninf/steps, ninf/defined
and ninf/isGt over stdio (the default) or a TCP socket (--addr), so a
type-checker driver process can call the simplifier without linking
pkg/ninf directly.`,
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd)

		addr := getString(cmd, "addr")
		maxSteps := getUint(cmd, "max-steps")

		if addr == "" {
			serveOne(context.Background(), stdioReadWriteCloser{}, maxSteps)
			return
		}

		serveTCP(addr, maxSteps)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen on this TCP address instead of stdio")
}

// serveTCP accepts connections on addr, serving each sequentially: the
// core is a pure computation, so there is no benefit to concurrent
// sessions beyond what the caller's own process model already gives it.
func serveTCP(addr string, maxSteps uint) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer listener.Close()

	log.WithField("addr", addr).Info("ninf: serve: listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.WithField("error", err).Warn("ninf: serve: accept failed")
			continue
		}

		serveOne(context.Background(), conn, maxSteps)
	}
}

func serveOne(ctx context.Context, rwc jsonrpc2Stream, maxSteps uint) {
	stream := jsonrpc2.NewStream(rwc)
	conn := jsonrpc2.NewConn(stream)

	conn.Go(ctx, handler(maxSteps))

	<-conn.Done()

	if err := conn.Err(); err != nil {
		log.WithField("error", err).Warn("ninf: serve: connection closed with error")
	}
}

// jsonrpc2Stream is the subset of io.ReadWriteCloser jsonrpc2.NewStream
// needs; named here so stdioReadWriteCloser and net.Conn both satisfy it
// without an explicit interface assertion at every call site.
type jsonrpc2Stream interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// stdioReadWriteCloser frames the RPC bridge over the process's own
// stdin/stdout when --addr is not given.
type stdioReadWriteCloser struct{}

func (stdioReadWriteCloser) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriteCloser) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
func (stdioReadWriteCloser) Close() error                { return nil }

type simplifyParams struct {
	Prop string `json:"prop"`
}

type simplifyResult struct {
	Prop string `json:"prop"`
}

type stepsResult struct {
	Steps []string `json:"steps"`
}

type definedParams struct {
	Expr string `json:"expr"`
}

type gtParams struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// handler dispatches each incoming call to the matching pkg/ninf entry
// point, replying with a JSON-RPC error on malformed params rather than
// panicking the server process. pkg/ninf's own panics (programmer errors
// reaching a rule that assumes well-definedness, step-cap exhaustion) are
// not recovered here, so such a panic ends the server process.
func handler(maxSteps uint) jsonrpc2.Handler {
	return func(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
		switch req.Method() {
		case "ninf/simplify":
			var params simplifyParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			p, err := ninf.Parse(params.Prop)
			if err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			return reply(ctx, simplifyResult{ninf.String(ninf.Simplify(p))}, nil)
		case "ninf/steps":
			var params simplifyParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			p, err := ninf.Parse(params.Prop)
			if err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			return reply(ctx, stepsResult{renderSteps(p, maxSteps)}, nil)
		case "ninf/defined":
			var params definedParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			e, err := ninf.ParseExpr(params.Expr)
			if err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			return reply(ctx, simplifyResult{ninf.String(ninf.Defined(e))}, nil)
		case "ninf/isGt":
			var params gtParams
			if err := json.Unmarshal(req.Params(), &params); err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			x, err := ninf.ParseExpr(params.X)
			if err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			y, err := ninf.ParseExpr(params.Y)
			if err != nil {
				return reply(ctx, nil, invalidParams(err))
			}

			return reply(ctx, simplifyResult{ninf.String(ninf.IsGt(x, y))}, nil)
		default:
			return reply(ctx, nil, jsonrpc2.NewError(codeMethodNotFound, "method not found"))
		}
	}
}

// JSON-RPC 2.0 reserved error codes used by this bridge.
const (
	codeInvalidParams  = -32602
	codeMethodNotFound = -32601
)

func renderSteps(p ninf.Prop, maxSteps uint) []string {
	if maxSteps == 0 {
		maxSteps = defaultMaxRPCSteps
	}

	it := ninf.SimpStepsIter(p)

	out := make([]string, 0, maxSteps)
	for i := uint(0); i < maxSteps && it.HasNext(); i++ {
		out = append(out, ninf.String(it.Next()))
	}

	return out
}

// defaultMaxRPCSteps bounds the "ninf/steps" response when the caller
// didn't set --max-steps. It is a fixed number of entries and does not
// depend on the input's size.
const defaultMaxRPCSteps = 4096

func invalidParams(err error) *jsonrpc2.Error {
	return jsonrpc2.NewError(codeInvalidParams, err.Error())
}
