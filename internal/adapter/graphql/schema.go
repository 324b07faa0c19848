package graphql

import (
	"github.com/graph-gophers/graphql-go"
	"go.uber.org/zap"

	"graphql-user-service/internal/usecase/user"
)

// SchemaString is the GraphQL wire contract of the service.
const SchemaString = `
	schema {
		query: Query
		mutation: Mutation
	}

	type User {
		id: ID!
		name: String!
		email: String!
	}

	type Query {
		users: [User!]!
		userById(id: ID!): User
	}

	type Mutation {
		addUser(name: String!, email: String!): User!
		deleteUser(id: ID!): Boolean!
	}
`

// NewSchema parses the schema and binds it to a root resolver backed by
// the given usecase. This is a static composition step performed once
// at process startup.
func NewSchema(uc user.Usecase, log *zap.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(
		SchemaString,
		NewResolver(uc, log),
		graphql.Logger(&panicLogger{log: log}),
	)
}
