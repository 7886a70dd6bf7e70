package client

import (
	"context"
	"net/http"

	"github.com/filecoin-project/go-jsonrpc"

	"github.com/Borja291/Blockchain/api"
)

// NewCrowdfundRPC creates a new http jsonrpc client.
func NewCrowdfundRPC(ctx context.Context, addr string, requestHeader http.Header, opts ...jsonrpc.Option) (api.Crowdfund, jsonrpc.ClientCloser, error) {
	var res api.CrowdfundStruct
	closer, err := jsonrpc.NewMergeClient(ctx, addr, "Crowdfund",
		api.GetInternalStructs(&res),
		requestHeader,
		append([]jsonrpc.Option{jsonrpc.WithErrors(api.RPCErrors)}, opts...)...,
	)

	return &res, closer, err
}
