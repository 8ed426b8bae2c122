// Package sqltype holds JDBC-style SQL type codes and the registry of
// declared (application side) type descriptors the type resolvers consult.
package sqltype
