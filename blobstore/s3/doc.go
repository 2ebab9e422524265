// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Pretrained embedding files are large and immutable, which matches S3's
// strengths: the store streams uploads through the transfer manager and
// serves reads with ranged GETs. Pair it with blobstore.CachingStore to
// mirror hot files onto local disk.
package s3
