// Package app is the composition layer. It wires domain services to their
// stores and manages lifecycle; business logic lives under app/services and
// persistence under app/storage.
//
//	internal/app/
//	├── application.go      # Application struct, wiring, seeding, lifecycle
//	├── api/                # Route contract shared by server and client
//	├── domain/             # Domain models (pure data structures)
//	├── storage/            # Store interfaces; memory/ and postgres/ backends
//	├── services/           # Business logic (contacts, blog, horoscopes, chat)
//	├── httpapi/            # HTTP handlers bound to the contract
//	├── system/             # Lifecycle management
//	└── metrics/            # Prometheus collectors
//
// Adding a new domain follows the same recipe throughout: model package under
// domain/, interface in storage/interfaces.go, postgres and memory
// implementations, service under services/, wiring in application.go, handler
// in httpapi/.
package app
