// Package embedgo loads token-to-vector embedding tables and exposes
// uniform lookup of one or many tokens.
//
// Three construction paths share one lookup contract:
//
//   - random initialization over an explicit vocabulary
//   - word2vec-style text files (header line, then "token v1 v2 ...")
//   - GloVe-style text files (no header, no quote handling)
//
// # Quick Start
//
// Load a pretrained table from local disk:
//
//	ctx := context.Background()
//	emb, err := embedgo.LoadGlove(ctx, embedgo.Local("glove.6B.50d.txt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vec, err := emb.Lookup("fawn")
//	rows, err := emb.LookupAll("fawn", "abandon")
//
// Gzip- and zstd-compressed files are decompressed transparently, so
// "glove.6B.50d.txt.gz" loads the same way.
//
// Load from object storage, mirrored onto local disk:
//
//	s3Store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("embeddings/"))
//	store, _ := blobstore.NewCachingStore(s3Store, "/fast/nvme/cache")
//	emb, err := embedgo.LoadWord2Vec(ctx, embedgo.Remote(store, "vectors.txt"))
//
// Random initialization for vocabularies without pretrained vectors:
//
//	idx, _ := vocab.NewIndex([]string{"fawn", "abandon", "cat"})
//	emb, _ := embedgo.NewRandom(idx, 128, embedgo.WithScale(0.2))
//
// An Embedding is immutable once a constructor returns; concurrent
// lookups need no synchronization. Re-parsing large text tables can be
// avoided with SaveSnapshot/LoadSnapshot.
package embedgo
