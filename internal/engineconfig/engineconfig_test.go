package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadSave(t *testing.T) {
	Convey("Given a temp config directory", t, func() {
		path := filepath.Join(t.TempDir(), "config", "engine.json")

		Convey("A missing file yields defaults", func() {
			p, err := Load(path)
			So(err, ShouldBeNil)
			So(p, ShouldResemble, Default())
			_, statErr := os.Stat(path)
			So(os.IsNotExist(statErr), ShouldBeTrue)
		})

		Convey("Saved preferences load back", func() {
			want := Default()
			want.ShowFPS = true
			want.ShowLog = true
			want.Seed = 42
			want.Width, want.Height = 800, 600
			So(Save(path, want), ShouldBeNil)
			got, err := Load(path)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, want)
		})

		Convey("Invalid JSON yields defaults and reports why", func() {
			So(os.MkdirAll(filepath.Dir(path), 0755), ShouldBeNil)
			So(os.WriteFile(path, []byte("{not json"), 0644), ShouldBeNil)
			p, err := Load(path)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldStartWith, "parse engine config")
			So(p, ShouldResemble, Default())
		})

		Convey("A directory in place of the file yields defaults and an error", func() {
			So(os.MkdirAll(path, 0755), ShouldBeNil)
			p, err := Load(path)
			So(err, ShouldNotBeNil)
			So(p, ShouldResemble, Default())
		})

		Convey("Missing keys keep their defaults", func() {
			So(os.MkdirAll(filepath.Dir(path), 0755), ShouldBeNil)
			So(os.WriteFile(path, []byte(`{"show_points": true, "width": 0}`), 0644), ShouldBeNil)
			p, err := Load(path)
			So(err, ShouldBeNil)
			So(p.ShowPoints, ShouldBeTrue)
			So(p.Width, ShouldEqual, 1280)
			So(p.TargetFPS, ShouldEqual, 60)
			So(p.LayoutPath, ShouldEqual, "config/scene.yaml")
		})
	})
}

func TestApplyEnv(t *testing.T) {
	Convey("Environment variables override preferences", t, func() {
		t.Setenv(EnvSeed, "1234")
		t.Setenv(EnvLayout, "alt.yaml")
		t.Setenv(EnvShowFPS, "true")
		p := Default()
		So(ApplyEnv(&p), ShouldBeNil)
		So(p.Seed, ShouldEqual, 1234)
		So(p.LayoutPath, ShouldEqual, "alt.yaml")
		So(p.ShowFPS, ShouldBeTrue)
	})

	Convey("A malformed seed is an error", t, func() {
		t.Setenv(EnvSeed, "many")
		p := Default()
		err := ApplyEnv(&p)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldStartWith, EnvSeed)
	})
}
