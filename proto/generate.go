// Package proto holds the agent gateway protocol definition. Run go generate
// with protoc, protoc-gen-go, and protoc-gen-go-grpc on PATH to regenerate.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative agent.proto
