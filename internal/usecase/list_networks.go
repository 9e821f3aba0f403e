package usecase

import (
	"context"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Offline skips the node_info lookup
	Offline bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name         string
	ChainID      string // configured
	LiveChainID  string // reported by the node
	RESTEndpoint string
	RPCEndpoint  string
	Error        error
}

// Mismatch reports a node answering with a different chain id than configured
func (s NetworkStatus) Mismatch() bool {
	return s.LiveChainID != "" && s.ChainID != "" && s.LiveChainID != s.ChainID
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	clients  ClientFactory
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, clients ClientFactory) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		clients:  clients,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	// Get all configured networks
	networkNames := uc.resolver.GetNetworks(ctx)

	// Check each network's status
	networks := make([]NetworkStatus, 0, len(networkNames))
	for _, name := range networkNames {
		status := NetworkStatus{
			Name: name,
		}

		info, err := uc.resolver.ResolveNetwork(ctx, name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.ChainID = info.ChainID
		status.RESTEndpoint = info.RESTEndpoint
		status.RPCEndpoint = info.RPCEndpoint

		if !params.Offline {
			// Ask the node which chain it serves
			live, err := uc.clients.NewClient(info).ChainID(ctx)
			if err != nil {
				status.Error = err
			} else {
				status.LiveChainID = live
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
