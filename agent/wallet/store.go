package wallet

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/findy-network/findy-common-go/crypto"
	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketKey byte = 0 + iota
	bucketDID
	bucketMeta
)

var buckets = [][]byte{
	{bucketKey},
	{bucketDID},
	{bucketMeta},
}

// StorageFilename is the name of the wallet file in the wallet's dir.
const StorageFilename = "wallet.bolt"

type store interface {
	put(bucketID byte, key string, value []byte) error
	get(bucketID byte, key string) (value []byte, found bool, err error)
	close() error
}

// boltStore is the default storage: an encrypted bolt file per wallet. The
// keys are hashed and the values are encrypted with the wallet key.
type boltStore struct {
	db     *bolt.DB
	cipher *crypto.Cipher
}

const openTimeout = 5 * time.Second

func newBoltStore(dir string, key []byte) (s *boltStore, err error) {
	defer err2.Handle(&err, "bolt wallet store")

	try.To(os.MkdirAll(dir, 0700))
	filename := filepath.Join(dir, StorageFilename)

	db := try.To1(bolt.Open(filename, 0600, &bolt.Options{Timeout: openTimeout}))
	defer err2.Handle(&err, func(err error) error {
		_ = db.Close()
		return err
	})

	try.To(db.Update(func(tx *bolt.Tx) (err error) {
		defer err2.Handle(&err, "create buckets")

		for _, b := range buckets {
			try.To1(tx.CreateBucketIfNotExists(b))
		}
		return nil
	}))
	return &boltStore{db: db, cipher: crypto.NewCipher(key)}, nil
}

func (s *boltStore) put(bucketID byte, key string, value []byte) (err error) {
	defer err2.Handle(&err, "put")

	data := s.encrypt(value)
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(buckets[bucketID]).Put(hash([]byte(key)), data)
	})
}

func (s *boltStore) get(bucketID byte, key string) (value []byte, found bool, err error) {
	defer err2.Handle(&err, "get")

	var data []byte
	try.To(s.db.View(func(tx *bolt.Tx) error {
		d := tx.Bucket(buckets[bucketID]).Get(hash([]byte(key)))
		if d != nil {
			// d is valid only inside the transaction
			data = append(d[:0:0], d...)
		}
		return nil
	}))
	if data == nil {
		return nil, false, nil
	}
	return s.decrypt(data), true, nil
}

func (s *boltStore) close() error {
	return s.db.Close()
}

func (s *boltStore) encrypt(value []byte) []byte {
	return s.cipher.TryEncrypt(value)
}

func (s *boltStore) decrypt(value []byte) []byte {
	return s.cipher.TryDecrypt(value)
}

func hash(key []byte) []byte {
	h := sha256.Sum256(key)
	return h[:]
}

// memStore is the storage of the plugged in-memory wallets. The data lives
// until the wallet is deleted.
type memStore struct {
	data map[byte]map[string][]byte
	l    sync.RWMutex
}

func newMemStore() *memStore {
	m := &memStore{data: make(map[byte]map[string][]byte, len(buckets))}
	for _, b := range buckets {
		m.data[b[0]] = make(map[string][]byte)
	}
	return m
}

func (m *memStore) put(bucketID byte, key string, value []byte) error {
	m.l.Lock()
	defer m.l.Unlock()
	m.data[bucketID][key] = append(value[:0:0], value...)
	return nil
}

func (m *memStore) get(bucketID byte, key string) ([]byte, bool, error) {
	m.l.RLock()
	defer m.l.RUnlock()
	v, ok := m.data[bucketID][key]
	return v, ok, nil
}

func (m *memStore) close() error {
	if glog.V(5) {
		glog.Info("closing in-memory wallet store")
	}
	return nil
}
