package plugin

import (
	"io/ioutil"

	"github.com/golang/protobuf/proto"
	"golang.org/x/xerrors"
)

// Manifest is the contents of a NAME.plugin file.
type Manifest struct {
	// Factory is the registered name of the plugin. Defaults to NAME.
	Factory  string `protobuf:"bytes,1,opt,name=factory,proto3" json:"factory,omitempty"`
	Disabled bool   `protobuf:"varint,2,opt,name=disabled,proto3" json:"disabled,omitempty"`
}

var _ proto.Message = (*Manifest)(nil)

func (m *Manifest) Reset()         { *m = Manifest{} }
func (m *Manifest) String() string { return proto.CompactTextString(m) }
func (*Manifest) ProtoMessage()    {}

// ReadManifest parses the manifest file at path.
func ReadManifest(path string) (*Manifest, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, xerrors.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := proto.UnmarshalText(string(buf), &m); err != nil {
		return nil, &ErrBadManifest{Path: path, Err: err}
	}
	return &m, nil
}

// WriteManifest writes m to path in text format.
func WriteManifest(path string, m *Manifest) error {
	if err := ioutil.WriteFile(path, []byte(proto.MarshalTextString(m)), 0644); err != nil {
		return xerrors.Errorf("writing manifest: %w", err)
	}
	return nil
}
