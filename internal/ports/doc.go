// Package ports declares the boundaries of the process service. Handlers call
// the service ports, which internal/app implements; internal/app calls the
// repository ports, which the SQL store implements. Tests substitute the
// mockery mocks under mocks/.
package ports
