package errors

// ErrorCode is the symbolic identifier carried by an S3 fault envelope.
// The set of codes is defined by the service and can grow, so ErrorCode is
// a string type rather than a closed enumeration: an unrecognized code
// still parses, carries its raw value, and reports Known() == false.
type ErrorCode string

// Documented S3 API error codes.
const (
	CodeAccessDenied                            ErrorCode = "AccessDenied"
	CodeAccountProblem                          ErrorCode = "AccountProblem"
	CodeAllAccessDisabled                       ErrorCode = "AllAccessDisabled"
	CodeAmbiguousGrantByEmailAddress            ErrorCode = "AmbiguousGrantByEmailAddress"
	CodeAuthorizationHeaderMalformed            ErrorCode = "AuthorizationHeaderMalformed"
	CodeBadDigest                               ErrorCode = "BadDigest"
	CodeBucketAlreadyExists                     ErrorCode = "BucketAlreadyExists"
	CodeBucketAlreadyOwnedByYou                 ErrorCode = "BucketAlreadyOwnedByYou"
	CodeBucketNotEmpty                          ErrorCode = "BucketNotEmpty"
	CodeCredentialsNotSupported                 ErrorCode = "CredentialsNotSupported"
	CodeCrossLocationLoggingProhibited          ErrorCode = "CrossLocationLoggingProhibited"
	CodeEntityTooSmall                          ErrorCode = "EntityTooSmall"
	CodeEntityTooLarge                          ErrorCode = "EntityTooLarge"
	CodeExpiredToken                            ErrorCode = "ExpiredToken"
	CodeIllegalVersioningConfigurationException ErrorCode = "IllegalVersioningConfigurationException"
	CodeIncompleteBody                          ErrorCode = "IncompleteBody"
	CodeIncorrectNumberOfFilesInPostRequest     ErrorCode = "IncorrectNumberOfFilesInPostRequest"
	CodeInlineDataTooLarge                      ErrorCode = "InlineDataTooLarge"
	CodeInternalError                           ErrorCode = "InternalError"
	CodeInvalidAccessKeyID                      ErrorCode = "InvalidAccessKeyId"
	CodeInvalidAddressingHeader                 ErrorCode = "InvalidAddressingHeader"
	CodeInvalidArgument                         ErrorCode = "InvalidArgument"
	CodeInvalidBucketName                       ErrorCode = "InvalidBucketName"
	CodeInvalidBucketState                      ErrorCode = "InvalidBucketState"
	CodeInvalidDigest                           ErrorCode = "InvalidDigest"
	CodeInvalidLocationConstraint               ErrorCode = "InvalidLocationConstraint"
	CodeInvalidObjectState                      ErrorCode = "InvalidObjectState"
	CodeInvalidPart                             ErrorCode = "InvalidPart"
	CodeInvalidPartOrder                        ErrorCode = "InvalidPartOrder"
	CodeInvalidPayer                            ErrorCode = "InvalidPayer"
	CodeInvalidPolicyDocument                   ErrorCode = "InvalidPolicyDocument"
	CodeInvalidRange                            ErrorCode = "InvalidRange"
	CodeInvalidRequest                          ErrorCode = "InvalidRequest"
	CodeInvalidSecurity                         ErrorCode = "InvalidSecurity"
	CodeInvalidSOAPRequest                      ErrorCode = "InvalidSOAPRequest"
	CodeInvalidStorageClass                     ErrorCode = "InvalidStorageClass"
	CodeInvalidTargetBucketForLogging           ErrorCode = "InvalidTargetBucketForLogging"
	CodeInvalidToken                            ErrorCode = "InvalidToken"
	CodeInvalidURI                              ErrorCode = "InvalidURI"
	CodeMalformedPOSTRequest                    ErrorCode = "MalformedPOSTRequest"
	CodeMalformedXML                            ErrorCode = "MalformedXML"
	CodeMaxMessageLengthExceeded                ErrorCode = "MaxMessageLengthExceeded"
	CodeMetadataTooLarge                        ErrorCode = "MetadataTooLarge"
	CodeMethodNotAllowed                        ErrorCode = "MethodNotAllowed"
	CodeMissingAttachment                       ErrorCode = "MissingAttachment"
	CodeMissingContentLength                    ErrorCode = "MissingContentLength"
	CodeMissingSecurityElement                  ErrorCode = "MissingSecurityElement"
	CodeMissingSecurityHeader                   ErrorCode = "MissingSecurityHeader"
	CodeNoLoggingStatusForKey                   ErrorCode = "NoLoggingStatusForKey"
	CodeNoSuchBucket                            ErrorCode = "NoSuchBucket"
	CodeNoSuchBucketPolicy                      ErrorCode = "NoSuchBucketPolicy"
	CodeNoSuchKey                               ErrorCode = "NoSuchKey"
	CodeNoSuchLifecycleConfiguration            ErrorCode = "NoSuchLifecycleConfiguration"
	CodeNoSuchUpload                            ErrorCode = "NoSuchUpload"
	CodeNoSuchVersion                           ErrorCode = "NoSuchVersion"
	CodeNotImplemented                          ErrorCode = "NotImplemented"
	CodeNotSignedUp                             ErrorCode = "NotSignedUp"
	CodeOperationAborted                        ErrorCode = "OperationAborted"
	CodePermanentRedirect                       ErrorCode = "PermanentRedirect"
	CodePreconditionFailed                      ErrorCode = "PreconditionFailed"
	CodeRedirect                                ErrorCode = "Redirect"
	CodeRestoreAlreadyInProgress                ErrorCode = "RestoreAlreadyInProgress"
	CodeRequestIsNotMultiPartContent            ErrorCode = "RequestIsNotMultiPartContent"
	CodeRequestTimeout                          ErrorCode = "RequestTimeout"
	CodeRequestTimeTooSkewed                    ErrorCode = "RequestTimeTooSkewed"
	CodeSignatureDoesNotMatch                   ErrorCode = "SignatureDoesNotMatch"
	CodeServiceUnavailable                      ErrorCode = "ServiceUnavailable"
	CodeSlowDown                                ErrorCode = "SlowDown"
	CodeTemporaryRedirect                       ErrorCode = "TemporaryRedirect"
	CodeTokenRefreshRequired                    ErrorCode = "TokenRefreshRequired"
	CodeTooManyBuckets                          ErrorCode = "TooManyBuckets"
	CodeUnexpectedContent                       ErrorCode = "UnexpectedContent"
	CodeUnresolvableGrantByEmailAddress         ErrorCode = "UnresolvableGrantByEmailAddress"
	CodeUserKeyMustBeSpecified                  ErrorCode = "UserKeyMustBeSpecified"
)

var knownCodes = map[ErrorCode]struct{}{
	CodeAccessDenied:                            {},
	CodeAccountProblem:                          {},
	CodeAllAccessDisabled:                       {},
	CodeAmbiguousGrantByEmailAddress:            {},
	CodeAuthorizationHeaderMalformed:            {},
	CodeBadDigest:                               {},
	CodeBucketAlreadyExists:                     {},
	CodeBucketAlreadyOwnedByYou:                 {},
	CodeBucketNotEmpty:                          {},
	CodeCredentialsNotSupported:                 {},
	CodeCrossLocationLoggingProhibited:          {},
	CodeEntityTooSmall:                          {},
	CodeEntityTooLarge:                          {},
	CodeExpiredToken:                            {},
	CodeIllegalVersioningConfigurationException: {},
	CodeIncompleteBody:                          {},
	CodeIncorrectNumberOfFilesInPostRequest:     {},
	CodeInlineDataTooLarge:                      {},
	CodeInternalError:                           {},
	CodeInvalidAccessKeyID:                      {},
	CodeInvalidAddressingHeader:                 {},
	CodeInvalidArgument:                         {},
	CodeInvalidBucketName:                       {},
	CodeInvalidBucketState:                      {},
	CodeInvalidDigest:                           {},
	CodeInvalidLocationConstraint:               {},
	CodeInvalidObjectState:                      {},
	CodeInvalidPart:                             {},
	CodeInvalidPartOrder:                        {},
	CodeInvalidPayer:                            {},
	CodeInvalidPolicyDocument:                   {},
	CodeInvalidRange:                            {},
	CodeInvalidRequest:                          {},
	CodeInvalidSecurity:                         {},
	CodeInvalidSOAPRequest:                      {},
	CodeInvalidStorageClass:                     {},
	CodeInvalidTargetBucketForLogging:           {},
	CodeInvalidToken:                            {},
	CodeInvalidURI:                              {},
	CodeMalformedPOSTRequest:                    {},
	CodeMalformedXML:                            {},
	CodeMaxMessageLengthExceeded:                {},
	CodeMetadataTooLarge:                        {},
	CodeMethodNotAllowed:                        {},
	CodeMissingAttachment:                       {},
	CodeMissingContentLength:                    {},
	CodeMissingSecurityElement:                  {},
	CodeMissingSecurityHeader:                   {},
	CodeNoLoggingStatusForKey:                   {},
	CodeNoSuchBucket:                            {},
	CodeNoSuchBucketPolicy:                      {},
	CodeNoSuchKey:                               {},
	CodeNoSuchLifecycleConfiguration:            {},
	CodeNoSuchUpload:                            {},
	CodeNoSuchVersion:                           {},
	CodeNotImplemented:                          {},
	CodeNotSignedUp:                             {},
	CodeOperationAborted:                        {},
	CodePermanentRedirect:                       {},
	CodePreconditionFailed:                      {},
	CodeRedirect:                                {},
	CodeRestoreAlreadyInProgress:                {},
	CodeRequestIsNotMultiPartContent:            {},
	CodeRequestTimeout:                          {},
	CodeRequestTimeTooSkewed:                    {},
	CodeSignatureDoesNotMatch:                   {},
	CodeServiceUnavailable:                      {},
	CodeSlowDown:                                {},
	CodeTemporaryRedirect:                       {},
	CodeTokenRefreshRequired:                    {},
	CodeTooManyBuckets:                          {},
	CodeUnexpectedContent:                       {},
	CodeUnresolvableGrantByEmailAddress:         {},
	CodeUserKeyMustBeSpecified:                  {},
}

// Known reports whether the code is one of the documented S3 error codes.
func (c ErrorCode) Known() bool {
	_, ok := knownCodes[c]
	return ok
}

// String returns the raw code string.
func (c ErrorCode) String() string {
	return string(c)
}
