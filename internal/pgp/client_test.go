package pgp_test

import (
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kennycyb/pars/internal/pgp"
	"github.com/kennycyb/pars/internal/store"
)

func TestPGP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "PGP Suite")
}

var _ = Describe("Client", func() {
	Describe("New", func() {
		Context("when a recipient cannot be resolved", func() {
			It("returns a KeyLookup error", func() {
				_, err := pgp.New("gpg2", []string{"nonexistent-user-12345@invalid-domain.example"}, nil)
				Expect(err).To(HaveOccurred())
				Expect(store.KindOf(err)).To(Equal(store.KindKeyLookup))
			})
		})
	})

	Describe("Encrypt and DecryptFile", func() {
		It("round-trips plaintext through a real recipient key", func() {
			Skip("requires a real GPG keyring with a usable recipient key")

			client, err := pgp.New("gpg2", []string{"your-gpg-email@example.com"}, nil)
			Expect(err).NotTo(HaveOccurred())

			dir, err := os.MkdirTemp("", "pars-pgp-test")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(dir)

			out := dir + "/secret.gpg"
			Expect(client.Encrypt([]byte("hunter2"), out)).To(Succeed())

			secret, err := client.DecryptFile(dir, out)
			Expect(err).NotTo(HaveOccurred())
			Expect(secret.String()).To(Equal("hunter2"))
		})
	})
})
