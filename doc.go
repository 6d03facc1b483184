// Package s3kit is a small synchronous client for S3-compatible object
// storage services (AWS S3, MinIO, LocalStack, ...).
//
// It builds, signs, and executes plain HTTP requests itself rather than
// wrapping a full service SDK: an operation is described once, signed with
// AWS Signature V4, executed over a single blocking HTTP exchange, and the
// response resolved into either a typed payload or a typed error. Callers
// can always distinguish a network problem (TransportError), a response
// that did not match its expected shape (DecodeError), and a documented
// rejection by the service (APIError with its error code).
//
// Key properties:
//   - Explicit endpoint, credentials, and addressing style (path or
//     virtual-hosted) via functional options
//   - One blocking request per operation; no hidden retries or caching
//   - Idempotent bucket creation via GetOrCreate
//   - Explicit continuation-token pagination for listings
//
// Example usage:
//
//	client, err := s3kit.New(
//	    s3kit.WithEndpoint("http://localhost:9000"),
//	    s3kit.WithCredentials("minioadmin", "minioadmin"),
//	    s3kit.WithPathStyle(true),
//	)
//	if err != nil {
//	    return err
//	}
//
//	bucket, err := client.Bucket("documents")
//	if err != nil {
//	    return err
//	}
//	if err := bucket.GetOrCreate(ctx); err != nil {
//	    return err
//	}
//	if err := bucket.PutObject(ctx, "hello.txt", []byte("hello")); err != nil {
//	    return err
//	}
package s3kit
