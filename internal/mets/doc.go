// Package mets builds and serializes METS documents describing a
// repository object, its members and its parents.
//
// A document has one fileSec holding one fileGrp per distinct content
// model, and one logical structMap:
//
//	<mets:mets xmlns:mets="http://www.loc.gov/METS/" xmlns:xlink="http://www.w3.org/1999/xlink">
//		<mets:fileSec>
//			<mets:fileGrp USE="http://pcdm.org/use#Page">
//				<mets:file ID="id-abc-123">
//					<mets:FLocat xlink:href="ark:/19837/abc-123" LOCTYPE="ARK"></mets:FLocat>
//				</mets:file>
//			</mets:fileGrp>
//		</mets:fileSec>
//		<mets:structMap TYPE="logical">
//			<mets:div>
//				<mets:fptr FILEID="id-abc-123"></mets:fptr>
//				<mets:div TYPE="http://purl.org/dc/terms/hasPart">...</mets:div>
//				<mets:div TYPE="http://purl.org/dc/terms/isPartOf">...</mets:div>
//			</mets:div>
//		</mets:structMap>
//	</mets:mets>
//
// Builder is pure: callers resolve model names before adding objects.
package mets
