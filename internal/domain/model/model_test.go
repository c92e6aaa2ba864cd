package model_test

import (
	"testing"

	model "github.com/okian/swatch/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestJobRecordFinished(t *testing.T) {
	convey.Convey("Given job records in each state", t, func() {
		convey.So(model.JobRecord{Status: model.JobPending}.Finished(), convey.ShouldBeFalse)
		convey.So(model.JobRecord{Status: model.JobDone}.Finished(), convey.ShouldBeTrue)
		convey.So(model.JobRecord{Status: model.JobFailed}.Finished(), convey.ShouldBeTrue)
		convey.So(model.JobRecord{}.Finished(), convey.ShouldBeFalse)
	})
}
