// Package proto holds the service definitions. Generated code lands in
// proto/account, proto/chat and proto/pairing and is not committed; run
// go generate ./proto after installing protoc-gen-go and
// protoc-gen-go-grpc.
package proto

//go:generate protoc --go_out=. --go_opt=module=ichat/proto --go-grpc_out=. --go-grpc_opt=module=ichat/proto account.proto
//go:generate protoc --go_out=. --go_opt=module=ichat/proto --go-grpc_out=. --go-grpc_opt=module=ichat/proto chat.proto
//go:generate protoc --go_out=. --go_opt=module=ichat/proto --go-grpc_out=. --go-grpc_opt=module=ichat/proto pairing.proto
