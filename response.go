/*
File: response.go
Version: 2.0.0
Description: Resolution outcome and its serialized form for the boundary collaborator
             (status, gateway_ip, gateway_mac, system, message).
*/

package main

import (
	"encoding/json"
	"net/http"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusError   Status = "error"
)

const (
	MACNotFound      = "Not found (try ping first)"
	NoGatewayMessage = "Could not detect default gateway. Try running as admin/sudo."
)

// Outcome is built fresh for every resolution and never stored.
type Outcome struct {
	Status   Status
	Gateway  string
	MAC      string
	System   string
	Message  string
	Hostname string
	Scope    string
	State    State
}

type Response struct {
	Status          Status `json:"status"`
	GatewayIP       string `json:"gateway_ip,omitempty"`
	GatewayMAC      string `json:"gateway_mac,omitempty"`
	System          string `json:"system,omitempty"`
	Message         string `json:"message,omitempty"`
	GatewayHostname string `json:"gateway_hostname,omitempty"`
	GatewayScope    string `json:"gateway_scope,omitempty"`
}

func (o Outcome) Response() Response {
	if o.Status == StatusError {
		return Response{Status: o.Status, System: o.System, Message: o.Message}
	}
	mac := o.MAC
	if mac == "" {
		mac = MACNotFound
	}
	return Response{
		Status:          o.Status,
		GatewayIP:       o.Gateway,
		GatewayMAC:      mac,
		System:          o.System,
		GatewayHostname: o.Hostname,
		GatewayScope:    o.Scope,
	}
}

func (o Outcome) HTTPStatus() int {
	if o.Status == StatusError {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Response())
}
