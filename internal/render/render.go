// Package render produces the self-contained HTML documents that embed
// remote Rise lessons, one per page, in the dialect the target LMS
// expects.
package render

import (
	"fmt"
	"html/template"
	"strings"
)

// URL path selectors understood by the Rise player. The SCORM dialect
// always uses "lessons"; the IMSCC dialect lets the operator choose.
const (
	SelectorBlocks   = "blocks"
	SelectorLessons  = "lessons"
	SelectorSections = "sections"
)

// ValidSelector reports whether s is a recognized URL path selector.
func ValidSelector(s string) bool {
	switch s {
	case SelectorBlocks, SelectorLessons, SelectorSections:
		return true
	}
	return false
}

// LessonURL builds the iframe target for one activity.
func LessonURL(baseURL, selector, sourceID string) string {
	return fmt.Sprintf("%s/index.html#/%s/%s", strings.TrimRight(baseURL, "/"), selector, sourceID)
}

type scormPageData struct {
	Title string
	Src   string
}

// ScormPage renders the SCORM-dialect HTML document for one activity:
// a full-viewport iframe plus the SCORM 1.2 runtime shim.
func ScormPage(title, sourceID, baseURL string) (string, error) {
	var sb strings.Builder
	err := scormTmpl.Execute(&sb, scormPageData{
		Title: title,
		Src:   LessonURL(baseURL, SelectorLessons, sourceID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render SCORM page: %w", err)
	}
	return sb.String(), nil
}

type wikiPageData struct {
	Title         string
	Identifier    string
	EditingRoles  string
	WorkflowState string
	Src           string
}

// WikiPage renders the IMSCC-dialect HTML document for one page. The
// three meta markers are written in the exact form ScanAdditionalPage
// reads back, so re-imported pages round-trip.
func WikiPage(title, identifier, sourceID, baseURL, selector string) (string, error) {
	var sb strings.Builder
	err := wikiTmpl.Execute(&sb, wikiPageData{
		Title:         title,
		Identifier:    identifier,
		EditingRoles:  DefaultEditingRoles,
		WorkflowState: DefaultWorkflowState,
		Src:           LessonURL(baseURL, selector, sourceID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render wiki page: %w", err)
	}
	return sb.String(), nil
}

var scormTmpl = template.Must(template.New("scorm").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <style>
        body, html {
            margin: 0;
            padding: 0;
            height: 100%;
            overflow: hidden;
        }
        .container {
            position: absolute;
            top: 0;
            left: 0;
            width: 100%;
            height: 100%;
        }
        iframe {
            width: 100%;
            height: 100%;
            border: none;
        }
    </style>
    <script>
        var apiHandle = null;
        var startTimeStamp = "";
        var exitPageStatus = "suspended";

        function getAPIHandle() {
            if (apiHandle == null) {
                apiHandle = getAPI();
            }
            return apiHandle;
        }

        function getAPI() {
            var theAPI = findAPI(window);
            if ((theAPI == null) && (window.opener != null) && (typeof(window.opener) != "undefined")) {
                theAPI = findAPI(window.opener);
            }
            if (theAPI == null) {
                console.log("Unable to find an API adapter");
            }
            return theAPI;
        }

        function findAPI(win) {
            var findAPITries = 0;
            while ((win.API == null) && (win.parent != null) && (win.parent != win)) {
                findAPITries++;
                if (findAPITries > 500) {
                    console.log("Error finding API -- too deeply nested.");
                    return null;
                }
                win = win.parent;
            }
            return win.API;
        }

        function initializeCommunication() {
            var api = getAPIHandle();
            if (api == null) {
                console.log("No API found.");
                return "false";
            }

            var result = api.LMSInitialize("");
            if (result != "true") {
                var errorNumber = api.LMSGetLastError();
                var errorString = api.LMSGetErrorString(errorNumber);
                console.log("Error initializing communication with the LMS: " + errorString);
                return "false";
            }

            return "true";
        }

        function terminateCommunication() {
            var api = getAPIHandle();
            if (api == null) {
                console.log("No API found.");
                return "false";
            }

            var result = api.LMSFinish("");
            if (result != "true") {
                var errorNumber = api.LMSGetLastError();
                var errorString = api.LMSGetErrorString(errorNumber);
                console.log("Error terminating communication with the LMS: " + errorString);
                return "false";
            }

            return "true";
        }

        function recordCompletionStatus(status) {
            var api = getAPIHandle();
            if (api == null) {
                console.log("No API found.");
                return "false";
            }

            var result = api.LMSSetValue("cmi.core.lesson_status", status);
            if (result != "true") {
                var errorNumber = api.LMSGetLastError();
                var errorString = api.LMSGetErrorString(errorNumber);
                console.log("Error setting lesson status: " + errorString);
                return "false";
            }

            return "true";
        }

        window.onload = function() {
            initializeCommunication();
            startTimeStamp = new Date();
            recordCompletionStatus("incomplete");
        };

        window.onbeforeunload = function() {
            var endTimeStamp = new Date();
            var totalTimeSpent = (endTimeStamp - startTimeStamp) / 1000;

            var api = getAPIHandle();
            if (api != null) {
                api.LMSSetValue("cmi.core.session_time", formatTime(totalTimeSpent));
                api.LMSCommit("");
            }

            recordCompletionStatus(exitPageStatus);
            terminateCommunication();
        };

        function formatTime(totalSeconds) {
            var hours = Math.floor(totalSeconds / 3600);
            var minutes = Math.floor((totalSeconds - hours * 3600) / 60);
            var seconds = Math.floor(totalSeconds - hours * 3600 - minutes * 60);

            var formattedTime = "";
            if (hours > 0) {
                formattedTime += hours + ":";
            }

            if (minutes < 10 && hours > 0) {
                formattedTime += "0";
            }
            formattedTime += minutes + ":";

            if (seconds < 10) {
                formattedTime += "0";
            }
            formattedTime += seconds;

            return formattedTime;
        }

        function markAsComplete() {
            exitPageStatus = "completed";
            recordCompletionStatus("completed");
            alert("This lesson has been marked as complete.");
        }
    </script>
</head>
<body>
    <div class="container">
        <iframe src="{{.Src}}" allowfullscreen></iframe>
    </div>
    <div style="position: absolute; bottom: 10px; right: 10px; z-index: 1000;">
        <button onclick="markAsComplete()" style="padding: 10px; background-color: #4CAF50; color: white; border: none; border-radius: 5px; cursor: pointer;">
            Mark as Complete
        </button>
    </div>
</body>
</html>
`))

var wikiTmpl = template.Must(template.New("wiki").Parse(`<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<meta name="identifier" content="{{.Identifier}}"/>
<meta name="editing_roles" content="{{.EditingRoles}}"/>
<meta name="workflow_state" content="{{.WorkflowState}}"/>
<style>
body, html {
    margin: 0;
    padding: 0;
    height: 100%;
}
iframe {
    position: absolute;
    top: 0;
    left: 0;
    width: 100%;
    height: 100%;
    border: none;
}
</style>
</head>
<body>
<iframe src="{{.Src}}" allowfullscreen></iframe>
</body>
</html>
`))
